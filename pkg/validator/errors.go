package validator

import "errors"

// Common validation errors that can be used across the framework.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required attribute is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidValue is returned when an attribute has an invalid value.
	ErrInvalidValue = errors.New("invalid value")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when an attribute has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")
)
