package errors

import (
	"fmt"
)

// ParseError represents a widget document that could not be read or decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a structurally invalid widget document field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ContactError is the advisory result of checking a platform contact identifier.
// Message is meant to be shown to the user as-is.
type ContactError struct {
	Platform string
	Message  string
}

// NewContactError constructs a ContactError for the given platform id.
func NewContactError(platform, message string) error {
	return &ContactError{Platform: platform, Message: message}
}

func (e *ContactError) Error() string {
	if e == nil {
		return ""
	}
	if e.Platform != "" {
		return fmt.Sprintf("%s: %s", e.Platform, e.Message)
	}
	return e.Message
}

// Unwrap returns nil; a ContactError never wraps another error.
func (e *ContactError) Unwrap() error {
	return nil
}
