package get_availability

import (
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityID int64      `json:"facilityId"`
	ScheduleID int64      `json:"scheduleId"`
	Date       string     `json:"date"`
	Slots      []SlotItem `json:"slots"`
}

// SlotItem состояние одного слота на дату
type SlotItem struct {
	SlotID     int64  `json:"slotId"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Size       int    `json:"size"`
	State      string `json:"state"`
	OccupiedBy *int64 `json:"occupiedBy,omitempty"`
}

// FromUseCaseResponse конвертирует модель usecase в HTTP response
func FromUseCaseResponse(resp *get_availability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		FacilityID: resp.FacilityID,
		ScheduleID: resp.ScheduleID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      make([]SlotItem, len(resp.Slots)),
	}

	for i, slot := range resp.Slots {
		result.Slots[i] = SlotItem{
			SlotID:     slot.SlotID,
			StartTime:  slot.StartTime.String(),
			EndTime:    slot.EndTime.String(),
			Size:       slot.Size,
			State:      slot.State,
			OccupiedBy: slot.OccupiedBy,
		}
	}

	return result
}
