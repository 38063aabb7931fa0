package models

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")

// ValidationError reports a required field that was missing or blank.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s is required", ErrValidation, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
