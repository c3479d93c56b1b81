package pkgerror

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned by stores when no item matches the requested key.
var ErrNotFound = errors.New("resource not found")

// Code identifies the kind of failure and decides the HTTP status.
type Code int

const (
	CodeInternal   Code = iota // store or encoding failure
	CodeBadRequest             // missing or blank path parameter
	CodeNotFound               // key lookup found nothing
)

// Error carries the message shown to clients next to the error that caused it.
type Error struct {
	err  error
	msg  string
	code Code
}

// Error returns the underlying error text when there is one, so logs keep the
// store's reason while clients only see Msg.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

// Msg returns the client-facing message.
func (e *Error) Msg() string { return e.msg }

// Code returns the error code.
func (e *Error) Code() Code { return e.code }

func (e *Error) Unwrap() error { return e.err }

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewInternal wraps a failed dependency call. Clients get msg; err stays
// reachable through errors.Is and errors.As.
func NewInternal(err error, msg string) error {
	return &Error{err: err, msg: msg, code: CodeInternal}
}

// NewBadRequest reports a missing or blank request parameter.
func NewBadRequest(msg string) error {
	return &Error{msg: msg, code: CodeBadRequest}
}

// NewNotFound reports that the addressed record does not exist.
func NewNotFound(msg string) error {
	return &Error{msg: msg, code: CodeNotFound}
}
