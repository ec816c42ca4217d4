package idx

import "fmt"

// Validation limits for resource protection.
const (
	MaxImageBytes = 16 * 1024 * 1024 // 16MB - maximum rows*cols of a single image
)

// ValidateImageHeader checks the magic number and the per-image size.
func ValidateImageHeader(h ImageHeader) error {
	if h.Magic != ImageMagic {
		return &MagicError{Container: "image", Got: h.Magic, Want: ImageMagic}
	}
	// Both factors fit in uint32, so the product fits in uint64.
	if size := uint64(h.Rows) * uint64(h.Cols); size > MaxImageBytes {
		return fmt.Errorf("%w: %dx%d = %d bytes, max %d", ErrImageTooLarge, h.Rows, h.Cols, size, MaxImageBytes)
	}
	return nil
}

// ValidateLabelHeader checks the magic number.
func ValidateLabelHeader(h LabelHeader) error {
	if h.Magic != LabelMagic {
		return &MagicError{Container: "label", Got: h.Magic, Want: LabelMagic}
	}
	return nil
}
