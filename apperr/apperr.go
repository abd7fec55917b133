package apperr

import "errors"

// Type is a category of failure.
type Type string

const (
	// Configuration covers a missing display backend, an unreadable
	// config file or a broken window definition. Reported once at startup.
	Configuration Type = "configuration"
	// Toolkit covers failures raised by the GUI toolkit while running.
	Toolkit Type = "toolkit"
)

// Error is a typed application error.
type Error struct {
	Type    Type
	Message string
	Details string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(t Type, message string) *Error {
	return &Error{Type: t, Message: message}
}

func Wrap(t Type, message string, cause error) *Error {
	return &Error{Type: t, Message: message, Cause: cause}
}

// Is reports whether err carries an *Error of type t anywhere in its chain.
func Is(err error, t Type) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case Configuration:
			return 1
		case Toolkit:
			return 2
		}
	}
	return 2
}
