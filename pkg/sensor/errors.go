package sensor

import "fmt"

// ReadError is returned when a power-supply file cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError is returned when a power-supply file is readable but its
// content is not a valid value.
type ParseError struct {
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse capacity %q: %v", e.Content, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
