// internal/apperrors/errors.go
package apperrors

import "fmt"

// Kind classifies an error for translation into an HTTP status at the
// handler boundary.
type Kind int

const (
	KindValidation Kind = iota // malformed or missing input
	KindNotFound               // dangling id reference
	KindAuth                   // missing/invalid session or credentials
	KindConflict               // unique constraint violation
)

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Wrap attaches a lower-level cause while keeping the kind and message.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}
