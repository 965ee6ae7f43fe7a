package resolver

import "fmt"

// DegenerateInputError reports a request with a zero or negative dimension.
// Rejected before any aspect-ratio computation.
type DegenerateInputError struct {
	Width  int
	Height int
	Err    error
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("degenerate input %dx%d: dimensions must be positive", e.Width, e.Height)
}

func (e *DegenerateInputError) Unwrap() error {
	return e.Err
}
