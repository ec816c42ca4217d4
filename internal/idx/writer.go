package idx

import (
	"fmt"
	"io"
)

// WriteImages writes a complete image container holding images to w.
// Every image must be exactly rows*cols bytes.
func WriteImages(w io.Writer, rows, cols uint32, images [][]byte) error {
	h := ImageHeader{Magic: ImageMagic, Count: uint32(len(images)), Rows: rows, Cols: cols}
	if err := ValidateImageHeader(h); err != nil {
		return err
	}

	if err := writeFields(w, h.Magic, h.Count, h.Rows, h.Cols); err != nil {
		return fmt.Errorf("failed to write image header: %w", err)
	}

	size := h.ImageSize()
	for i, img := range images {
		if len(img) != size {
			return fmt.Errorf("%w: image %d has %d bytes, want %d", ErrSizeMismatch, i, len(img), size)
		}
		if _, err := w.Write(img); err != nil {
			return fmt.Errorf("failed to write image %d: %w", i, err)
		}
	}
	return nil
}

// WriteLabels writes a complete label container holding labels to w.
func WriteLabels(w io.Writer, labels []byte) error {
	if err := writeFields(w, LabelMagic, uint32(len(labels))); err != nil {
		return fmt.Errorf("failed to write label header: %w", err)
	}
	if _, err := w.Write(labels); err != nil {
		return fmt.Errorf("failed to write labels: %w", err)
	}
	return nil
}

func writeFields(w io.Writer, fields ...uint32) error {
	buf := make([]byte, 0, len(fields)*FieldSize)
	for _, f := range fields {
		b := EncodeUint32(f)
		buf = append(buf, b[:]...)
	}
	_, err := w.Write(buf)
	return err
}
