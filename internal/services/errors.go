package services

import (
	"errors"
	"fmt"
	"strings"
)

// The error taxonomy every handler maps onto HTTP statuses. Services wrap
// repository failures into one of these; anything else surfaces as an
// internal error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("authentication required")
	ErrForbidden          = errors.New("insufficient permissions")
)

type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingFields(fields ...string) *ValidationError {
	return &ValidationError{
		Message: "missing required fields: " + strings.Join(fields, ", "),
		Fields:  fields,
	}
}

func invalidInput(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
