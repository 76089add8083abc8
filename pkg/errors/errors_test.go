package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := NewRoomNotFoundError(42)

	assert.True(t, errors.Is(err, ErrRoomNotFound))
	assert.False(t, errors.Is(err, ErrReservationNotFound))
	assert.Contains(t, err.Error(), "ROOM_NOT_FOUND")
	assert.Contains(t, err.Error(), "42")
}

func TestAppError_IsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create reservation: %w", NewRoomUnavailableError(5, 2))

	assert.True(t, errors.Is(wrapped, ErrRoomUnavailable))

	errType, code := TypeOf(wrapped)
	assert.Equal(t, ErrorTypeConflict, errType)
	assert.Equal(t, CodeRoomUnavailable, code)
}

func TestTypeOf_PlainError(t *testing.T) {
	errType, code := TypeOf(errors.New("boom"))

	assert.Equal(t, ErrorTypeInternal, errType)
	assert.Equal(t, CodeInternal, code)
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "reservation not found with ID: 7", MessageOf(NewReservationNotFoundError(7)))
	assert.Equal(t, "internal server error", MessageOf(NewInternalError("failed to query", errors.New("conn reset"))))
	assert.Equal(t, "internal server error", MessageOf(errors.New("boom")))
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternalError("failed to list reservations", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "INTERNAL_ERROR: failed to list reservations: connection refused", err.Error())
}
