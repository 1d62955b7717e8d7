package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrBadRequest ErrorCode = iota + 1000
	ErrNotFound
	ErrInternal
	ErrFormat
	ErrInvalidDuration
	ErrPolicyViolation
	ErrSlotConflict
)

// StatusCode maps an error code to its HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrBadRequest, ErrFormat, ErrInvalidDuration:
		return http.StatusBadRequest
	case ErrPolicyViolation, ErrSlotConflict:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// Format signals a malformed clock time or calendar date.
func Format(message string, err error) *AppError {
	return &AppError{
		Code:    ErrFormat,
		Message: message,
		Err:     err,
	}
}

// InvalidDuration signals a requested booking duration of zero or less.
func InvalidDuration(minutes int) *AppError {
	return &AppError{
		Code:    ErrInvalidDuration,
		Message: fmt.Sprintf("booking duration must be positive, got %d minutes", minutes),
	}
}

// PolicyViolation signals a date outside the salon's lead-time window.
func PolicyViolation(message string) *AppError {
	return &AppError{
		Code:    ErrPolicyViolation,
		Message: message,
	}
}

// SlotConflict signals that a requested start time is no longer free.
func SlotConflict(start string) *AppError {
	return &AppError{
		Code:    ErrSlotConflict,
		Message: fmt.Sprintf("time slot %s is no longer available", start),
	}
}
