package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidID    = errors.New("invalid ID")
	ErrNoWorkspace  = errors.New("display surface used outside an initialized workspace")
	ErrEmptyContent = errors.New("no documents found")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidID
}

// ResolutionError is returned when a requested identifier is not in the store
type ResolutionError struct {
	Requested string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no document matches %q", e.Requested)
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrNotFound
}

// LoadError wraps a per-item content failure
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
