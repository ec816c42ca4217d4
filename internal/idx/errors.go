package idx

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidMagic  = errors.New("invalid magic number")
	ErrShortHeader   = errors.New("header is truncated")
	ErrImageTooLarge = errors.New("image size exceeds maximum")
	ErrSizeMismatch  = errors.New("record size does not match header")
)

// MagicError reports a magic number that does not identify the expected container.
type MagicError struct {
	Container string // "image" or "label"
	Got       uint32
	Want      uint32
}

// Error implements the error interface.
func (e *MagicError) Error() string {
	return fmt.Sprintf("%s container: got magic 0x%08x, want 0x%08x", e.Container, e.Got, e.Want)
}

// Unwrap allows errors.Is(err, ErrInvalidMagic).
func (e *MagicError) Unwrap() error {
	return ErrInvalidMagic
}
