package internal

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorCode defines supported error codes.
type ErrorCode uint

const (
	// ErrorCodeUnknown indicates an unclassified failure, typically coming
	// from the datastore or another collaborator.
	ErrorCodeUnknown ErrorCode = iota
	// ErrorCodeNotFound indicates the record does not exist or is not
	// visible to the requested operation.
	ErrorCodeNotFound
	// ErrorCodeInvalidArgument indicates one or more field-level
	// validation failures.
	ErrorCodeInvalidArgument
	// ErrorCodeInvalidReference indicates a supplied category id does not
	// resolve to an active category.
	ErrorCodeInvalidReference
)

// Error represents an error that could be wrapping another error, it includes
// a code for determining what triggered it.
type Error struct {
	orig error
	msg  string
	code ErrorCode
}

// WrapErrorf returns a wrapped error.
func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

// NewErrorf instantiates a new error.
func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

// Error returns the message, when wrapping errors the wrapped error is returned.
func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	return e.orig
}

// Code returns the code representing this error.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Fields returns the per-field violations when the error originated from
// validation, so callers can enumerate every offending field. Returns nil
// for non-validation errors.
func (e *Error) Fields() map[string]string {
	var verr validation.Errors
	if !errors.As(e.orig, &verr) {
		return nil
	}

	fields := make(map[string]string, len(verr))
	for name, err := range verr {
		fields[name] = err.Error()
	}

	return fields
}
