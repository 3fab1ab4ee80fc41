package update_schedule_slots

import (
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

// UpdateSlotsRequest HTTP request model
// Набор слотов заменяет каталог расписания целиком
type UpdateSlotsRequest struct {
	Slots []SlotInputItem `json:"slots"`
}

// SlotInputItem входные данные одного слота
type SlotInputItem struct {
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`   // HH:MM
	Size      int    `json:"size"`
}

// ToDomainSlots конвертирует HTTP request в domain представление
// Формат времени проверяется на границе, битый ввод не доходит до сервиса
func (r *UpdateSlotsRequest) ToDomainSlots() ([]domain.SlotInput, error) {
	slots := make([]domain.SlotInput, len(r.Slots))
	for i, s := range r.Slots {
		start, err := types.NewTimeStringFromString(s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(s.EndTime)
		if err != nil {
			return nil, err
		}
		slots[i] = domain.SlotInput{
			StartTime: start,
			EndTime:   end,
			Size:      s.Size,
		}
	}
	return slots, nil
}

// SlotListResponse HTTP response model
type SlotListResponse struct {
	ScheduleID int64      `json:"scheduleId"`
	Slots      []SlotItem `json:"slots"`
}

// SlotItem один слот нового каталога
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
