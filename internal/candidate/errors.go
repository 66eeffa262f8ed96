// Package candidate loads a candidate's records and the target job's requirements from disk.
package candidate

import "fmt"

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("load error: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
