// Package apperr defines the structured error taxonomy and the JSON
// error envelope shared by all request handlers.
package apperr

import (
	"fmt"
	"net/http"
)

// Error is an error that should become one exact HTTP response.
type Error struct {
	StatusCode int
	Message    string
	Code       string
	// Operational marks the message as safe to reveal to clients.
	// Anything non-operational is collapsed to a generic 500 by Format.
	Operational bool
	// Cause is the underlying error, if any. Kept for logs, never
	// serialized.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As classification.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithCode overrides the symbolic code derived from the status code.
func (e *Error) WithCode(code string) *Error {
	e.Code = code
	return e
}

// New creates an operational error for the given status code. An empty
// message defaults to the canonical phrase for that status.
func New(statusCode int, message string) *Error {
	if message == "" {
		message = Phrase(statusCode)
	}
	return &Error{
		StatusCode:  statusCode,
		Message:     message,
		Code:        CodeName(statusCode),
		Operational: true,
	}
}

// Defect wraps an unexpected failure as a non-operational taxonomy
// value. Format collapses it to the generic 500 envelope; the cause is
// kept for logging only.
func Defect(cause error) *Error {
	e := New(http.StatusInternalServerError, "")
	e.Operational = false
	e.Cause = cause
	return e
}

// ServerError creates an operational server-side error. Unlike the
// other variants it accepts an explicit status code, defaulting to 500.
func ServerError(message string, statusCode ...int) *Error {
	status := http.StatusInternalServerError
	if len(statusCode) > 0 {
		status = statusCode[0]
	}
	return New(status, message)
}

func variant(statusCode int, message []string) *Error {
	if len(message) > 0 {
		return New(statusCode, message[0])
	}
	return New(statusCode, "")
}

// BadRequest creates a 400 error.
func BadRequest(message ...string) *Error {
	return variant(http.StatusBadRequest, message)
}

// Unauthorized creates a 401 error.
func Unauthorized(message ...string) *Error {
	return variant(http.StatusUnauthorized, message)
}

// PaymentRequired creates a 402 error.
func PaymentRequired(message ...string) *Error {
	return variant(http.StatusPaymentRequired, message)
}

// Forbidden creates a 403 error.
func Forbidden(message ...string) *Error {
	return variant(http.StatusForbidden, message)
}

// NotFound creates a 404 error.
func NotFound(message ...string) *Error {
	return variant(http.StatusNotFound, message)
}

// MethodNotAllowed creates a 405 error.
func MethodNotAllowed(message ...string) *Error {
	return variant(http.StatusMethodNotAllowed, message)
}

// NotAcceptable creates a 406 error.
func NotAcceptable(message ...string) *Error {
	return variant(http.StatusNotAcceptable, message)
}

// RequestTimeout creates a 408 error.
func RequestTimeout(message ...string) *Error {
	return variant(http.StatusRequestTimeout, message)
}

// Conflict creates a 409 error.
func Conflict(message ...string) *Error {
	return variant(http.StatusConflict, message)
}

// Gone creates a 410 error.
func Gone(message ...string) *Error {
	return variant(http.StatusGone, message)
}

// PreconditionFailed creates a 412 error.
func PreconditionFailed(message ...string) *Error {
	return variant(http.StatusPreconditionFailed, message)
}

// PayloadTooLarge creates a 413 error.
func PayloadTooLarge(message ...string) *Error {
	return variant(http.StatusRequestEntityTooLarge, message)
}

// UnsupportedMediaType creates a 415 error.
func UnsupportedMediaType(message ...string) *Error {
	return variant(http.StatusUnsupportedMediaType, message)
}

// UnprocessableEntity creates a 422 error.
func UnprocessableEntity(message ...string) *Error {
	return variant(http.StatusUnprocessableEntity, message)
}

// TooManyRequests creates a 429 error.
func TooManyRequests(message ...string) *Error {
	return variant(http.StatusTooManyRequests, message)
}

// NotImplemented creates a 501 error.
func NotImplemented(message ...string) *Error {
	return variant(http.StatusNotImplemented, message)
}

// BadGateway creates a 502 error.
func BadGateway(message ...string) *Error {
	return variant(http.StatusBadGateway, message)
}

// ServiceUnavailable creates a 503 error.
func ServiceUnavailable(message ...string) *Error {
	return variant(http.StatusServiceUnavailable, message)
}

// GatewayTimeout creates a 504 error.
func GatewayTimeout(message ...string) *Error {
	return variant(http.StatusGatewayTimeout, message)
}

// InsufficientStorage creates a 507 error.
func InsufficientStorage(message ...string) *Error {
	return variant(http.StatusInsufficientStorage, message)
}
