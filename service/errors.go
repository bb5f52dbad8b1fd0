// Package service holds errors shared by the domain services.
package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every request validation failure.
var ErrInvalidInput = errors.New("invalid input")

// NotFoundError reports a failed product or option lookup.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q does not exist", e.Entity, e.Key)
}

// InvalidInputf wraps ErrInvalidInput with a formatted detail.
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
