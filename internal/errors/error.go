package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryTemplate Category = "template"
	CategoryRender   Category = "render"
	CategoryProtocol Category = "protocol"
	CategoryCLI      Category = "cli"
)

// WeftError is a structured error with a stable code, detail text, and
// an optional fix suggestion.
type WeftError struct {
	// Code is a unique error identifier (e.g., "W001").
	Code string

	// Category is the error type (template, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is the concrete diagnostic for this occurrence.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *WeftError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *WeftError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds the concrete diagnostic for this occurrence.
func (e *WeftError) WithDetail(d string) *WeftError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *WeftError) WithSuggestion(s string) *WeftError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *WeftError) Wrap(err error) *WeftError {
	e.Wrapped = err
	return e
}

// New creates a WeftError from a registered error code.
func New(code string) *WeftError {
	template, ok := registry[code]
	if !ok {
		return &WeftError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &WeftError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
		DocURL:     template.DocURL,
	}
}

// Newf creates a new WeftError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *WeftError {
	return &WeftError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a WeftError.
func FromError(err error, code string) *WeftError {
	if err == nil {
		return nil
	}
	if we, ok := err.(*WeftError); ok {
		return we
	}
	return New(code).Wrap(err)
}

// IsCode reports whether err is a WeftError with the given code.
func IsCode(err error, code string) bool {
	we, ok := err.(*WeftError)
	return ok && we.Code == code
}
