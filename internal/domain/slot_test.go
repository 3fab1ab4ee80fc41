package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

func slotInput(start, end string, size int) SlotInput {
	return SlotInput{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Size:      size,
	}
}

func TestValidateSlots_OK(t *testing.T) {
	slots := []SlotInput{
		slotInput("07:00", "07:30", 2),
		slotInput("07:30", "08:00", 2),
		slotInput("09:00", "10:00", 1),
	}

	require.NoError(t, ValidateSlots(slots))
}

func TestValidateSlots_EmptySetOK(t *testing.T) {
	require.NoError(t, ValidateSlots(nil))
}

func TestValidateSlots_UnsortedInputOK(t *testing.T) {
	// Порядок во входных данных не важен, проверяется отсортированный набор
	slots := []SlotInput{
		slotInput("09:00", "10:00", 1),
		slotInput("07:00", "07:30", 2),
		slotInput("07:30", "08:00", 2),
	}

	require.NoError(t, ValidateSlots(slots))
}

func TestValidateSlots_StartAfterEnd(t *testing.T) {
	slots := []SlotInput{
		slotInput("08:00", "07:00", 1),
	}

	err := ValidateSlots(slots)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestValidateSlots_StartEqualsEnd(t *testing.T) {
	slots := []SlotInput{
		slotInput("08:00", "08:00", 1),
	}

	err := ValidateSlots(slots)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestValidateSlots_SizeBelowMinimum(t *testing.T) {
	slots := []SlotInput{
		slotInput("07:00", "08:00", 0),
	}

	err := ValidateSlots(slots)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestValidateSlots_InvalidTimeFormat(t *testing.T) {
	slots := []SlotInput{
		slotInput("7am", "08:00", 1),
	}

	err := ValidateSlots(slots)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSlotRange)
}

func TestValidateSlots_Overlap(t *testing.T) {
	slots := []SlotInput{
		slotInput("07:00", "08:00", 1),
		slotInput("07:30", "09:00", 1),
	}

	err := ValidateSlots(slots)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotsOverlap)
	// Оба участника пересечения попадают в сообщение
	assert.Contains(t, err.Error(), "07:00")
	assert.Contains(t, err.Error(), "07:30")
}

func TestValidateSlots_TouchingBoundariesOK(t *testing.T) {
	// end[i] == start[i+1] не считается пересечением
	slots := []SlotInput{
		slotInput("07:00", "08:00", 1),
		slotInput("08:00", "09:00", 1),
	}

	require.NoError(t, ValidateSlots(slots))
}
