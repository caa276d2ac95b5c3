package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidation    = "validation_error"
	CodeNotFound      = "not_found"
	CodeUnauthorized  = "unauthorized"
	CodeLimitExceeded = "limit_exceeded"
	CodeInternal      = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(msg string) *Error {
	return New(http.StatusBadRequest, CodeValidation, errors.New(msg))
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, CodeNotFound, errors.New(msg))
}

func Unauthorized(msg string) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, errors.New(msg))
}

func LimitExceeded(msg string) *Error {
	return New(http.StatusBadRequest, CodeLimitExceeded, errors.New(msg))
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}

// From maps an arbitrary error to an *Error, wrapping unknown errors as a
// 500 so the handler layer never leaks raw causes to clients.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}
