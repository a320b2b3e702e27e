package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCodeMismatch       = errors.New("verification code mismatch")
	ErrAlreadySubmitted   = errors.New("pitch already submitted")
	ErrAlreadyReviewed    = errors.New("already reviewed")
	ErrAlreadyVoted       = errors.New("already voted")
	ErrWindowClosed       = errors.New("award window closed")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrBadRequest)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func Unprocessable(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func InvalidCredentials(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrInvalidCredentials)
}

func CodeMismatch(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrCodeMismatch)
}

func AlreadyReviewed(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrAlreadyReviewed)
}

func AlreadyVoted(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrAlreadyVoted)
}

func WindowClosed(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrWindowClosed)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
