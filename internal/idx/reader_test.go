package idx

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadImages(t *testing.T) {
	var buf bytes.Buffer
	images := [][]byte{{0, 85, 170, 255}, {1, 2, 3, 4}}
	require.NoError(t, WriteImages(&buf, 2, 2, images))
	assert.Equal(t, ImageHeaderSize+8, buf.Len())

	h, err := ReadImageHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, ImageHeader{Magic: ImageMagic, Count: 2, Rows: 2, Cols: 2}, h)
	assert.Equal(t, []byte{0, 85, 170, 255, 1, 2, 3, 4}, buf.Bytes())
}

func TestWriteReadLabels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLabels(&buf, []byte{7, 2, 1}))

	h, err := ReadLabelHeader(&buf)
	require.NoError(t, err)
	assert.Equal(t, LabelHeader{Magic: LabelMagic, Count: 3}, h)
	assert.Equal(t, []byte{7, 2, 1}, buf.Bytes())
}

func TestReadImageHeader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "empty",
			data:    nil,
			wantErr: ErrShortHeader,
		},
		{
			name:    "magic only",
			data:    []byte{0x00, 0x00, 0x08, 0x03},
			wantErr: ErrShortHeader,
		},
		{
			name:    "label magic in image file",
			data:    []byte{0x00, 0x00, 0x08, 0x01, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
			wantErr: ErrInvalidMagic,
		},
		{
			name:    "byte swapped magic",
			data:    []byte{0x03, 0x08, 0x00, 0x00, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
			wantErr: ErrInvalidMagic,
		},
		{
			name:    "bad magic wins over short header",
			data:    []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00},
			wantErr: ErrInvalidMagic,
		},
		{
			name:    "image too large",
			data:    []byte{0x00, 0x00, 0x08, 0x03, 0, 0, 0, 1, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			wantErr: ErrImageTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadImageHeader(bytes.NewReader(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReadLabelHeader_Errors(t *testing.T) {
	_, err := ReadLabelHeader(bytes.NewReader([]byte{0x00, 0x00, 0x08, 0x03, 0, 0, 0, 1}))
	require.Error(t, err)
	var magicErr *MagicError
	require.True(t, errors.As(err, &magicErr))
	assert.Equal(t, "label", magicErr.Container)
	assert.Equal(t, uint32(0x803), magicErr.Got)
	assert.Equal(t, LabelMagic, magicErr.Want)
	assert.Contains(t, err.Error(), "0x00000801")

	_, err = ReadLabelHeader(bytes.NewReader([]byte{0x00, 0x00, 0x08, 0x01, 0, 0}))
	assert.ErrorIs(t, err, ErrShortHeader)
}

func TestWriteImages_SizeMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := WriteImages(&buf, 2, 2, [][]byte{{1, 2, 3}})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
