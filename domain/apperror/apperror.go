// Package apperror defines the error taxonomy shared by the usecases and the
// HTTP layer. Every failure carries a message, contextual details and the time
// it happened, so handlers can render a structured error body.
package apperror

import (
	"errors"
	"fmt"
	"time"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidInput
	KindConflict
	KindDatabaseOperation
	KindOperationNotAllowed
	KindUnauthorizedAccess
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidInput:
		return "InvalidInput"
	case KindConflict:
		return "Conflict"
	case KindDatabaseOperation:
		return "DatabaseOperation"
	case KindOperationNotAllowed:
		return "OperationNotAllowed"
	case KindUnauthorizedAccess:
		return "UnauthorizedAccess"
	}
	return "Unknown"
}

type Error struct {
	Kind      Kind
	Message   string
	Details   string
	Timestamp time.Time
	Err       error
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, message, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details, Timestamp: time.Now().UTC()}
}

func NewNotFound(message, details string) *Error {
	return newError(KindNotFound, message, details)
}

func NewInvalidInput(message, details string) *Error {
	return newError(KindInvalidInput, message, details)
}

func NewConflict(message, details string) *Error {
	return newError(KindConflict, message, details)
}

// NewDatabaseOperation wraps an unexpected store failure; cause is kept for
// logging but never rendered to the client.
func NewDatabaseOperation(message string, cause error) *Error {
	e := newError(KindDatabaseOperation, message, "")
	e.Err = cause
	return e
}

func NewOperationNotAllowed(message, details string) *Error {
	return newError(KindOperationNotAllowed, message, details)
}

func NewUnauthorizedAccess(message, details string) *Error {
	return newError(KindUnauthorizedAccess, message, details)
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

func IsNotFound(err error) bool     { return KindOf(err) == KindNotFound }
func IsInvalidInput(err error) bool { return KindOf(err) == KindInvalidInput }
func IsConflict(err error) bool     { return KindOf(err) == KindConflict }
