package idx

import (
	"errors"
	"fmt"
	"io"
)

// ReadImageHeader reads and validates an image container header from r.
//
// The magic number is checked before the remaining fields, so a file with a
// wrong signature reports ErrInvalidMagic even when it is also too short.
func ReadImageHeader(r io.Reader) (ImageHeader, error) {
	buf := make([]byte, ImageHeaderSize)
	n, err := io.ReadFull(r, buf)
	if n >= FieldSize {
		if magic := field(buf, 0); magic != ImageMagic {
			return ImageHeader{}, &MagicError{Container: "image", Got: magic, Want: ImageMagic}
		}
	}
	if err != nil {
		return ImageHeader{}, headerReadError("image", n, ImageHeaderSize, err)
	}

	h := ImageHeader{
		Magic: field(buf, 0),
		Count: field(buf, 1),
		Rows:  field(buf, 2),
		Cols:  field(buf, 3),
	}
	if err := ValidateImageHeader(h); err != nil {
		return ImageHeader{}, err
	}
	return h, nil
}

// ReadLabelHeader reads and validates a label container header from r.
func ReadLabelHeader(r io.Reader) (LabelHeader, error) {
	buf := make([]byte, LabelHeaderSize)
	n, err := io.ReadFull(r, buf)
	if n >= FieldSize {
		if magic := field(buf, 0); magic != LabelMagic {
			return LabelHeader{}, &MagicError{Container: "label", Got: magic, Want: LabelMagic}
		}
	}
	if err != nil {
		return LabelHeader{}, headerReadError("label", n, LabelHeaderSize, err)
	}

	h := LabelHeader{
		Magic: field(buf, 0),
		Count: field(buf, 1),
	}
	if err := ValidateLabelHeader(h); err != nil {
		return LabelHeader{}, err
	}
	return h, nil
}

func headerReadError(container string, got, want int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s container has %d of %d header bytes", ErrShortHeader, container, got, want)
	}
	return fmt.Errorf("failed to read %s header: %w", container, err)
}
