package slider

import (
	"errors"
	"fmt"
)

// ErrNoSlider is reported when a presentation piece is built without the
// slider it is supposed to read from.
var ErrNoSlider = errors.New("no slider instance")

// UsageError signals a programming mistake at the boundary between the core
// and its presentation collaborators. It is not recoverable.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("slider: %s: %v", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Require returns a *UsageError wrapping ErrNoSlider when s is nil.
func Require[T any](op string, s *Slider[T]) error {
	if s == nil {
		return &UsageError{Op: op, Err: ErrNoSlider}
	}
	return nil
}
