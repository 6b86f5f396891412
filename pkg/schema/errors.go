package schema

import "errors"

// Package-specific errors
var (
	// ErrInvalidSchema is returned when a schema fails load-time validation.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrSchemaNotFound is returned when looking up an unregistered schema uid.
	ErrSchemaNotFound = errors.New("schema not found")

	// ErrDuplicateSchema is returned when registering a uid twice.
	ErrDuplicateSchema = errors.New("schema already registered")

	// ErrFailedToParseSchema is returned when a schema document cannot be decoded.
	ErrFailedToParseSchema = errors.New("failed to parse schema document")
)
