package get_schedule_slots

import (
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
)

// SlotListResponse HTTP response model
type SlotListResponse struct {
	ScheduleID int64      `json:"scheduleId"`
	Slots      []SlotItem `json:"slots"`
}

// SlotItem один слот каталога
type SlotItem struct {
	ID        int64  `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Size      int    `json:"size"`
}

// FromDomainSlots конвертирует domain слоты в HTTP response
func FromDomainSlots(scheduleID int64, slots []*domain.Slot) *SlotListResponse {
	result := &SlotListResponse{
		ScheduleID: scheduleID,
		Slots:      make([]SlotItem, len(slots)),
	}

	for i, slot := range slots {
		result.Slots[i] = SlotItem{
			ID:        slot.ID,
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Size:      slot.Size,
		}
	}

	return result
}
