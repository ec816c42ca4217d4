package mnist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthetic(t *testing.T) {
	images, labels := Synthetic(12)
	require.Len(t, images, 12)
	require.Len(t, labels, 12)

	for i, img := range images {
		assert.Len(t, img, SyntheticSize*SyntheticSize)
		assert.Equal(t, byte(i%10), labels[i])
	}
	// Digit 3 starts its band at row 6.
	assert.Equal(t, byte(0), images[3][5*SyntheticSize+10])
	assert.Equal(t, byte(204), images[3][6*SyntheticSize+10])
}

func TestWriteSet_Mismatch(t *testing.T) {
	images, _ := Synthetic(2)
	err := WriteSet(t.TempDir(), SetTest, SyntheticSize, SyntheticSize, images, []byte{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSet_FileNames(t *testing.T) {
	images, labels := SetTest.FileNames()
	assert.Equal(t, "t10k-images-idx3-ubyte", images)
	assert.Equal(t, "t10k-labels-idx1-ubyte", labels)

	images, labels = Set("").FileNames()
	assert.Equal(t, "t10k-images-idx3-ubyte", images)
	assert.Equal(t, "t10k-labels-idx1-ubyte", labels)

	images, _ = SetTrain.FileNames()
	assert.Equal(t, "train-images-idx3-ubyte", images)
}
