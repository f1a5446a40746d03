package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryParse    Category = "parse"
	CategoryState    Category = "state"
	CategoryProtocol Category = "protocol"
	CategoryConfig   Category = "config"
)

// LumaError is a structured error with a code, category, and suggestions.
type LumaError struct {
	// Code is a unique error identifier (e.g., "E1001").
	Code string

	// Category is the error type (parse, state, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *LumaError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *LumaError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *LumaError) WithDetail(format string, args ...any) *LumaError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *LumaError) WithSuggestion(s string) *LumaError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *LumaError) Wrap(err error) *LumaError {
	e.Wrapped = err
	return e
}

// New creates a LumaError from a registered error code.
func New(code string) *LumaError {
	template, ok := registry[code]
	if !ok {
		return &LumaError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &LumaError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new LumaError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *LumaError {
	return &LumaError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a LumaError.
func FromError(err error, code string) *LumaError {
	if err == nil {
		return nil
	}
	var le *LumaError
	if errors.As(err, &le) {
		return le
	}
	return New(code).Wrap(err)
}

// IsCode reports whether err (or any error it wraps) carries the given code.
func IsCode(err error, code string) bool {
	var le *LumaError
	if errors.As(err, &le) {
		return le.Code == code
	}
	return false
}
