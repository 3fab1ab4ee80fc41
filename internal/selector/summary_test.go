package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary_Empty(t *testing.T) {
	s := New(catalog())
	assert.Equal(t, "", s.Summary())
}

func TestSummary_SingleSlot(t *testing.T) {
	s := New(catalog())

	s.Click(0)
	assert.Equal(t, "07:00 - 07:30", s.Summary())
}

func TestSummary_ContiguousRun(t *testing.T) {
	s := New(catalog())

	s.Click(0)
	s.Click(1)
	assert.Equal(t, "07:00 to 08:00", s.Summary())
}

func TestSummary_NonContiguous(t *testing.T) {
	s := New(catalog())

	s.Click(0)
	s.Click(3)
	assert.Equal(t, "07:00 - 07:30, 08:30 - 09:00", s.Summary())
}

func TestSummary_RangeAroundBookedSlotIsNonContiguous(t *testing.T) {
	// Диапазон через занятый слот дает разрыв в индексах
	s := New(catalog())

	s.ShiftClick(1)
	s.Click(3)
	assert.Equal(t, "07:30 - 08:00, 08:30 - 09:00", s.Summary())
}
