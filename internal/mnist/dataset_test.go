package mnist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kunimune0893/ML-examples/internal/idx"
)

func TestOpen(t *testing.T) {
	dir := writeSynthetic(t, 15)

	ds, err := Open(dir, DatasetOptions{})
	require.NoError(t, err)
	assert.Equal(t, 15, ds.Len())
	assert.Equal(t, SyntheticSize, ds.Rows())
	assert.Equal(t, SyntheticSize, ds.Cols())
	assert.Equal(t, idx.ImageMagic, ds.ImageHeader().Magic)
	assert.Equal(t, uint32(15), ds.LabelHeader().Count)
	assert.Equal(t, 0, ds.Cached())
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(t.TempDir(), DatasetOptions{})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestDataset_Sample(t *testing.T) {
	dir := writeSynthetic(t, 15)
	ds, err := Open(dir, DatasetOptions{})
	require.NoError(t, err)

	s, err := ds.Sample(12)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), s.Label)
	assert.Equal(t, 1, ds.Cached())

	want, err := LoadOne(dir, 12)
	require.NoError(t, err)
	assert.Equal(t, want, s)

	// Mutating a returned sample never reaches the cache.
	s.Pixels[0] = 42
	again, err := ds.Sample(12)
	require.NoError(t, err)
	assert.Equal(t, want, again)
	assert.Equal(t, 1, ds.Cached())
}

func TestDataset_Range(t *testing.T) {
	dir := writeSynthetic(t, 15)
	ds, err := Open(dir, DatasetOptions{})
	require.NoError(t, err)

	got, err := ds.Range(4, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, Labels(got))
	assert.Equal(t, 6, ds.Cached())

	cached, err := ds.Range(5, 3)
	require.NoError(t, err)
	assert.Equal(t, got[1:4], cached)

	ds.Flush()
	assert.Equal(t, 0, ds.Cached())

	_, err = ds.Range(10, 6)
	assert.ErrorIs(t, err, ErrTruncatedRead)

	_, err = ds.Range(-1, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDataset_ServesFromCache(t *testing.T) {
	dir := writeSynthetic(t, 4)
	ds, err := Open(dir, DatasetOptions{})
	require.NoError(t, err)

	first, err := ds.Range(0, 4)
	require.NoError(t, err)

	// Replace the files; cached records are still served.
	images, labels := Synthetic(4)
	for i := range labels {
		labels[i] = 9
	}
	require.NoError(t, WriteSet(dir, SetTest, SyntheticSize, SyntheticSize, images, labels))

	second, err := ds.Range(0, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	ds.Flush()
	third, err := ds.Range(0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 9, 9, 9}, Labels(third))
}

func TestDataset_HugeRange(t *testing.T) {
	dir := writeSynthetic(t, 5)

	for _, opts := range []DatasetOptions{{}, {Options: Options{SkipRangeCheck: true}}} {
		ds, err := Open(dir, opts)
		require.NoError(t, err)

		for _, count := range []int{math.MaxInt, math.MaxInt / 2, 6} {
			samples, err := ds.Range(0, count)
			require.Error(t, err)
			assert.Nil(t, samples)
			assert.ErrorIs(t, err, ErrTruncatedRead)
		}

		_, err = ds.Range(math.MaxInt, math.MaxInt)
		assert.ErrorIs(t, err, ErrTruncatedRead)

		// A fully cached prefix does not hide the overshoot.
		_, err = ds.Range(0, 5)
		require.NoError(t, err)
		_, err = ds.Range(0, math.MaxInt)
		assert.ErrorIs(t, err, ErrTruncatedRead)
	}
}
