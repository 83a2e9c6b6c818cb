package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStoreUnavailable indicates the record store could not be reached.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ErrInvalidCredential is the single generic rejection returned for a failed login.
var ErrInvalidCredential = errors.New("invalid credential")

// ErrUnauthorized indicates that no valid session accompanied the request.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the session role may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrMissingCredentials indicates the text-generation service has no API key configured.
var ErrMissingCredentials = errors.New("text generation credentials not configured")

// AppError carries an HTTP-ish status code and a message alongside the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with the name of the missing resource.
func NewNotFoundError(resource string) *AppError {
	return NewAppError(404, resource+" not found", ErrNotFound)
}

// NewValidationError wraps ErrValidation with a human readable reason.
func NewValidationError(message string) *AppError {
	return NewAppError(400, message, ErrValidation)
}

// NewStoreUnavailableError wraps the driver error so that errors.Is matches ErrStoreUnavailable
// while the original cause stays in the message.
func NewStoreUnavailableError(op string, cause error) *AppError {
	return NewAppError(503, op, fmt.Errorf("%w: %v", ErrStoreUnavailable, cause))
}
