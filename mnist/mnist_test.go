package mnist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunimune0893/ML-examples/mnist"
)

func writeSet(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	images, labels := mnist.Synthetic(n)
	require.NoError(t, mnist.WriteSet(dir, mnist.SetTest, mnist.SyntheticSize, mnist.SyntheticSize, images, labels))
	return dir
}

func TestPublicAPI(t *testing.T) {
	dir := writeSet(t, 10)

	samples, err := mnist.Load(dir, 2, 3)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.Equal(t, uint8(2), samples[0].Label)

	one, err := mnist.LoadOne(dir, 4)
	require.NoError(t, err)
	assert.Equal(t, samples[2], one)

	_, err = mnist.LoadWithOptions(dir, 0, 11, mnist.Options{})
	assert.ErrorIs(t, err, mnist.ErrTruncatedRead)

	_, err = mnist.Load(t.TempDir(), 0, 1)
	assert.ErrorIs(t, err, mnist.ErrFileNotFound)

	ds, err := mnist.Open(dir, mnist.DatasetOptions{})
	require.NoError(t, err)
	assert.Equal(t, 10, ds.Len())
}

func TestPublicHelpers(t *testing.T) {
	dir := writeSet(t, 10)
	samples, err := mnist.Load(dir, 0, 4)
	require.NoError(t, err)

	m, err := mnist.Matrix(samples)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, mnist.SyntheticSize*mnist.SyntheticSize, c)

	assert.Equal(t, []int{0, 1, 2, 3}, mnist.Labels(samples))

	img, err := mnist.Gray(samples[0], mnist.SyntheticSize, mnist.SyntheticSize)
	require.NoError(t, err)
	assert.Equal(t, mnist.SyntheticSize, img.Bounds().Dx())

	st := mnist.Summarize(samples)
	assert.Equal(t, 4, st.Count)
	assert.InDelta(t, 0.8, st.Max, 1e-6)

	assert.Contains(t, mnist.ASCII(samples[0], mnist.SyntheticSize), "#")
}
