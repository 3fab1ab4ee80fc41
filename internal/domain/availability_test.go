package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrongerState_Priority(t *testing.T) {
	// confirmed > pending > rejected > available
	assert.Equal(t, SlotConfirmed, StrongerState(SlotPending, SlotConfirmed))
	assert.Equal(t, SlotConfirmed, StrongerState(SlotConfirmed, SlotAvailable))
	assert.Equal(t, SlotPending, StrongerState(SlotRejected, SlotPending))
	assert.Equal(t, SlotRejected, StrongerState(SlotAvailable, SlotRejected))
	assert.Equal(t, SlotAvailable, StrongerState(SlotAvailable, SlotAvailable))
}

func TestSlotAvailability_IsSelectable(t *testing.T) {
	// rejected снова доступен для выбора
	assert.True(t, SlotAvailability{State: SlotAvailable}.IsSelectable())
	assert.True(t, SlotAvailability{State: SlotRejected}.IsSelectable())
	assert.False(t, SlotAvailability{State: SlotPending}.IsSelectable())
	assert.False(t, SlotAvailability{State: SlotConfirmed}.IsSelectable())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusRejected}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBooking_IsOwnedBy(t *testing.T) {
	userID := int64(42)

	owned := &Booking{UserID: &userID}
	assert.True(t, owned.IsOwnedBy(42))
	assert.False(t, owned.IsOwnedBy(7))

	// Гостевое бронирование не принадлежит никому
	guest := &Booking{}
	assert.False(t, guest.IsOwnedBy(42))
}
