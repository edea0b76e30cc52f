package survey

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound is returned when a requested column is not in the table.
	ErrColumnNotFound = errors.New("column not found")
	// ErrNotText is returned when a text operation is given a non-string column.
	ErrNotText = errors.New("column is not text")
	// ErrNoDisplay is returned by display operations when no Display is set.
	ErrNoDisplay = errors.New("no display configured")
)

// LoadError reports a dataset that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SchemaError reports a missing or malformed required column.
type SchemaError struct {
	Column string
	// Row is the zero-based data row at fault, or -1 when the whole column is.
	Row     int
	Message string
	Err     error
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("column %q: %s", e.Column, e.Message)
	if e.Row >= 0 {
		msg = fmt.Sprintf("column %q row %d: %s", e.Column, e.Row, e.Message)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

func columnError(name string) error {
	return fmt.Errorf("%q: %w", name, ErrColumnNotFound)
}
