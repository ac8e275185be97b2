package domain

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when a request carries no usable credentials.
var ErrUnauthorized = errors.New("user is not authenticated")

// NotFoundError reports an absent resource. The message names the lookup key
// that failed ("User id=...", "User email=...", "Card id=..."), so handlers
// can surface it verbatim.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NotFound builds a NotFoundError with a formatted message.
func NotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// AlreadyExistsError reports a uniqueness violation (duplicate email or card
// number).
type AlreadyExistsError struct {
	Message string
}

func (e *AlreadyExistsError) Error() string { return e.Message }

// AlreadyExists builds an AlreadyExistsError with a formatted message.
func AlreadyExists(format string, args ...any) *AlreadyExistsError {
	return &AlreadyExistsError{Message: fmt.Sprintf(format, args...)}
}

// AccessDeniedError reports an ownership mismatch on a mutating operation.
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string { return e.Message }

// AccessDenied builds an AccessDeniedError naming the restricted action.
func AccessDenied(action string) *AccessDeniedError {
	return &AccessDeniedError{Message: "Access denied: you can only " + action}
}
