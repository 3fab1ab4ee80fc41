package update_schedule_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

func TestToDomainSlots(t *testing.T) {
	req := UpdateSlotsRequest{Slots: []SlotInputItem{
		{StartTime: "07:00", EndTime: "07:30", Size: 2},
		{StartTime: "07:30", EndTime: "08:00", Size: 1},
	}}

	slots, err := req.ToDomainSlots()
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("07:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("08:00"), slots[1].EndTime)
}

func TestToDomainSlots_InvalidTimeFormat(t *testing.T) {
	req := UpdateSlotsRequest{Slots: []SlotInputItem{
		{StartTime: "7:00", EndTime: "07:30", Size: 1},
	}}

	_, err := req.ToDomainSlots()
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}
