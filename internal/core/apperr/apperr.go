package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an operational error. The codes mirror what the API
// exposes to clients, every error that crosses the HTTP boundary carries one.
type Kind string

const (
	KindValidation         Kind = "VALIDATION_ERROR"
	KindDuplicate          Kind = "DUPLICATE_ERROR"
	KindInvalidReference   Kind = "INVALID_REFERENCE"
	KindMissingToken       Kind = "TOKEN_MISSING"
	KindInvalidToken       Kind = "TOKEN_INVALID"
	KindExpiredToken       Kind = "TOKEN_EXPIRED"
	KindInvalidCredentials Kind = "AUTHENTICATION_ERROR"
	KindNotFound           Kind = "NOT_FOUND_ERROR"
	KindRateLimited        Kind = "RATE_LIMIT_ERROR"
	KindInternal           Kind = "INTERNAL_ERROR"
)

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation, KindDuplicate, KindInvalidReference:
		return http.StatusBadRequest
	case KindMissingToken, KindInvalidToken, KindExpiredToken, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

func InvalidReference(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidReference, Message: fmt.Sprintf(format, args...)}
}

func Validation(message string, fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func MissingToken() *Error {
	return &Error{Kind: KindMissingToken, Message: "authentication token missing"}
}

func InvalidToken() *Error {
	return &Error{Kind: KindInvalidToken, Message: "invalid authentication token"}
}

func ExpiredToken() *Error {
	return &Error{Kind: KindExpiredToken, Message: "authentication token expired"}
}

// InvalidCredentials collapses "unknown email" and "wrong password" into one
// indistinguishable failure.
func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "invalid email or password"}
}

func RateLimited() *Error {
	return &Error{Kind: KindRateLimited, Message: "too many requests"}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: err}
}

// From extracts the *Error from an error chain. Anything not already
// classified is treated as internal.
func From(err error) *Error {
	var e *Error

	if errors.As(err, &e) {
		return e
	}

	return Internal(err)
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}
