package domain

import (
	"fmt"
	"sort"

	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

// Schedule represents a named set of bookable time slots
// A schedule is attached to zero or more facilities
type Schedule struct {
	ID   int64
	Name string
}

// Slot represents a single bookable time range within a schedule
// An archived slot is no longer part of the live catalog but stays
// addressable for the booking history that references it
type Slot struct {
	ID         int64
	ScheduleID int64
	StartTime  types.TimeString
	EndTime    types.TimeString
	Size       int
	Archived   bool
}

// SlotInput входные данные слота при полной замене каталога расписания
type SlotInput struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Size      int
}

// ValidateSlots проверяет набор слотов перед заменой каталога расписания
// Требования: start < end, size >= 1, отсортированные по началу слоты не пересекаются
// Проверка выполняется целиком до любой записи — каталог меняется по принципу всё или ничего
func ValidateSlots(slots []SlotInput) error {
	for _, s := range slots {
		if err := s.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
		}
		if err := s.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSlotRange, err)
		}
		if !s.StartTime.IsBefore(s.EndTime) {
			return fmt.Errorf("%w: slot %s-%s has start >= end", ErrInvalidSlotRange, s.StartTime, s.EndTime)
		}
		if s.Size < MinSlotSize {
			return fmt.Errorf("%w: slot %s-%s has size %d, minimum is %d",
				ErrInvalidSlotRange, s.StartTime, s.EndTime, s.Size, MinSlotSize)
		}
	}

	sorted := make([]SlotInput, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.IsBefore(sorted[j].StartTime)
	})

	for i := 0; i+1 < len(sorted); i++ {
		// Соседние слоты могут граничить (end == start), но не пересекаться
		if sorted[i].EndTime.IsAfter(sorted[i+1].StartTime) {
			return fmt.Errorf("%w: slot %s-%s overlaps slot %s-%s",
				ErrSlotsOverlap,
				sorted[i].StartTime, sorted[i].EndTime,
				sorted[i+1].StartTime, sorted[i+1].EndTime)
		}
	}

	return nil
}
