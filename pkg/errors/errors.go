package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeConflict indicates a conflict with existing data
	ErrorTypeConflict ErrorType = "CONFLICT"

	// ErrorTypeInternal indicates an internal server error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// Code narrows an ErrorType down to the booking failure the caller hit.
type Code string

const (
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeInvalidDateRange    Code = "INVALID_DATE_RANGE"
	CodeRoomNotFound        Code = "ROOM_NOT_FOUND"
	CodeClientNotFound      Code = "CLIENT_NOT_FOUND"
	CodeReservationNotFound Code = "RESERVATION_NOT_FOUND"
	CodeRoomUnavailable     Code = "ROOM_UNAVAILABLE"
	CodeInternal            Code = "INTERNAL_ERROR"
)

// Sentinels for errors.Is. Matching is by Code, so errors built with the
// constructors below compare equal to these regardless of message.
var (
	ErrInvalidInput        = &AppError{Type: ErrorTypeValidation, Code: CodeInvalidInput, Message: "invalid input"}
	ErrInvalidDateRange    = &AppError{Type: ErrorTypeValidation, Code: CodeInvalidDateRange, Message: "check-out date must be after check-in date"}
	ErrRoomNotFound        = &AppError{Type: ErrorTypeNotFound, Code: CodeRoomNotFound, Message: "room not found"}
	ErrClientNotFound      = &AppError{Type: ErrorTypeNotFound, Code: CodeClientNotFound, Message: "client not found"}
	ErrReservationNotFound = &AppError{Type: ErrorTypeNotFound, Code: CodeReservationNotFound, Message: "reservation not found"}
	ErrRoomUnavailable     = &AppError{Type: ErrorTypeConflict, Code: CodeRoomUnavailable, Message: "room is not available for the selected dates"}
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewValidationError creates a new invalid input error
func NewValidationError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    CodeInvalidInput,
		Message: message,
	}
}

// NewInvalidDateRangeError creates a new invalid date range error
func NewInvalidDateRangeError(checkIn, checkOut string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Code:    CodeInvalidDateRange,
		Message: fmt.Sprintf("check-out date %s must be after check-in date %s", checkOut, checkIn),
	}
}

// NewRoomNotFoundError creates a new room not found error
func NewRoomNotFoundError(id int64) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    CodeRoomNotFound,
		Message: fmt.Sprintf("room not found with ID: %d", id),
	}
}

// NewClientNotFoundError creates a new client not found error
func NewClientNotFoundError(id int64) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    CodeClientNotFound,
		Message: fmt.Sprintf("client not found with ID: %d", id),
	}
}

// NewReservationNotFoundError creates a new reservation not found error
func NewReservationNotFoundError(id int64) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    CodeReservationNotFound,
		Message: fmt.Sprintf("reservation not found with ID: %d", id),
	}
}

// NewRoomUnavailableError creates a new room unavailable error
func NewRoomUnavailableError(roomID int64, conflicts int) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Code:    CodeRoomUnavailable,
		Message: fmt.Sprintf("room %d is not available for the selected dates (%d conflicting reservations)", roomID, conflicts),
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Code:    CodeInternal,
		Message: message,
		Err:     err,
	}
}

// TypeOf returns the ErrorType and Code of err, treating anything that is
// not an AppError as internal.
func TypeOf(err error) (ErrorType, Code) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, appErr.Code
	}
	return ErrorTypeInternal, CodeInternal
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type != ErrorTypeInternal {
		return appErr.Message
	}
	return "internal server error"
}
