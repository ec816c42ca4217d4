package mnist

import (
	"errors"
	"fmt"
)

// Error kinds. Every *LoadError matches exactly one of them with errors.Is.
var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrTruncatedRead   = errors.New("truncated read")
	ErrInvalidArgument = errors.New("invalid argument")
)

// LoadError describes why a load failed.
type LoadError struct {
	Kind    error  // One of the Err* kinds above
	Path    string // File involved, if any
	Record  int    // Record index involved, -1 if none
	Details string // Additional details
	Err     error  // Underlying cause, may be nil
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Record >= 0 {
		msg += fmt.Sprintf(": record %d", e.Record)
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func fileNotFound(path string, err error) error {
	return &LoadError{Kind: ErrFileNotFound, Path: path, Record: -1, Err: err}
}

func invalidFormat(path string, err error) error {
	return &LoadError{Kind: ErrInvalidFormat, Path: path, Record: -1, Err: err}
}

func truncatedRead(path string, record int, details string, err error) error {
	return &LoadError{Kind: ErrTruncatedRead, Path: path, Record: record, Details: details, Err: err}
}

func invalidArgument(details string) error {
	return &LoadError{Kind: ErrInvalidArgument, Record: -1, Details: details}
}
