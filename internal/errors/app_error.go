package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the client-side error taxonomy. Transport failures carry the
// upstream HTTP status; validation failures never reach the network layer.
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeTransport    = "TRANSPORT_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeDecode       = "DECODE_ERROR"
	ErrCodeSession      = "SESSION_ERROR"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, 0)
}

func TransportError(message string) *AppError {
	return NewAppError(ErrCodeTransport, message, 0)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func DecodeError(message string) *AppError {
	return NewAppError(ErrCodeDecode, message, 0)
}

func SessionError(message string) *AppError {
	return NewAppError(ErrCodeSession, message, 0)
}

// FromStatus maps a non-2xx upstream status to an AppError. Callers decide
// recovery; 401 handling lives in the admin HTTP client.
func FromStatus(status int) *AppError {
	switch status {
	case http.StatusUnauthorized:
		return NewAppError(ErrCodeUnauthorized, "API error: 401", status)
	case http.StatusNotFound:
		return NewAppError(ErrCodeNotFound, "API error: 404", status)
	default:
		return NewAppError(ErrCodeTransport, fmt.Sprintf("API error: %d", status), status)
	}
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

func IsNotFound(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == ErrCodeNotFound
	}

	return false
}

func IsUnauthorized(err error) bool {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code == ErrCodeUnauthorized
	}

	return false
}
