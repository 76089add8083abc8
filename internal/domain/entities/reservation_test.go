package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_IsValid(t *testing.T) {
	for _, s := range []ReservationStatus{"PENDING", "CONFIRMED", "CANCELLED", "COMPLETED"} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, ReservationStatus("pending").IsValid())
	assert.False(t, ReservationStatus("").IsValid())
}

func TestRoomType_IsValid(t *testing.T) {
	assert.True(t, RoomTypeDeluxe.IsValid())
	assert.False(t, RoomType("PENTHOUSE").IsValid())
}

func TestReservationPatch_AbsentVersusNull(t *testing.T) {
	var patch ReservationPatch
	assert.True(t, patch.IsEmpty())

	patch.SpecialRequests = Some[*string](nil)
	assert.False(t, patch.IsEmpty())

	value, ok := patch.SpecialRequests.Get()
	assert.True(t, ok)
	assert.Nil(t, value)

	_, ok = patch.CheckInDate.Get()
	assert.False(t, ok)
}

func TestOptional_Some(t *testing.T) {
	in := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	opt := Some(in)

	got, ok := opt.Get()
	assert.True(t, ok)
	assert.Equal(t, in, got)
}
