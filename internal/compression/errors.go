// Package compression shortens resume text with a language model.
package compression

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResult is returned when the model gives back no usable text.
	ErrEmptyResult = errors.New("compression returned no text")
	// ErrOverBudget is returned when a rewritten item is still longer than allowed.
	ErrOverBudget = errors.New("compressed text exceeds character budget")
)

// Error represents a failed compression attempt
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compression error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compression error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
