package idx

import "encoding/binary"

// Format constants.
const (
	ImageMagic uint32 = 0x00000803 // unsigned byte, 3 dimensions
	LabelMagic uint32 = 0x00000801 // unsigned byte, 1 dimension

	FieldSize       = 4  // every header field is a uint32
	ImageHeaderSize = 16 // magic + count + rows + cols
	LabelHeaderSize = 8  // magic + count
)

// ImageHeader is the decoded header of an image container.
type ImageHeader struct {
	Magic uint32 // Always ImageMagic once validated
	Count uint32 // Number of images
	Rows  uint32 // Rows per image
	Cols  uint32 // Columns per image
}

// ImageSize returns the number of bytes of a single image.
func (h ImageHeader) ImageSize() int {
	return int(h.Rows) * int(h.Cols)
}

// LabelHeader is the decoded header of a label container.
type LabelHeader struct {
	Magic uint32 // Always LabelMagic once validated
	Count uint32 // Number of labels
}

// DecodeUint32 interprets four bytes in file order (most significant first).
func DecodeUint32(b [FieldSize]byte) uint32 {
	return binary.BigEndian.Uint32(b[:])
}

// EncodeUint32 is the inverse of DecodeUint32.
func EncodeUint32(v uint32) [FieldSize]byte {
	var b [FieldSize]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b
}

// field returns the i-th header field of buf.
func field(buf []byte, i int) uint32 {
	var b [FieldSize]byte
	copy(b[:], buf[i*FieldSize:(i+1)*FieldSize])
	return DecodeUint32(b)
}
