package get_availability

import (
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
)

// resolveSlotStates вычисляет состояние каждого слота каталога на дату
//
// Для каждого слота находятся бронирования с совпадающим slot_id; итоговое
// состояние определяется приоритетом confirmed > pending > rejected > available.
// По инварианту на (facility, date, slot) существует не больше одного активного
// бронирования, но дубликаты обрабатываются выбором старшего состояния,
// а не ошибкой. Отмененные бронирования состояние слота не меняют
func resolveSlotStates(slots []*domain.Slot, bookings []*domain.Booking) []domain.SlotAvailability {
	result := make([]domain.SlotAvailability, len(slots))

	for i, slot := range slots {
		availability := domain.SlotAvailability{
			Slot:  *slot,
			State: domain.SlotAvailable,
		}

		for _, b := range bookings {
			if b.SlotID != slot.ID {
				continue
			}

			state := stateForBooking(b)
			if state == "" {
				continue
			}

			stronger := domain.StrongerState(availability.State, state)
			if stronger != availability.State {
				availability.State = stronger
				if b.IsActive() {
					availability.OccupiedBy = b.UserID
				} else {
					availability.OccupiedBy = nil
				}
			}
		}

		result[i] = availability
	}

	return result
}

// stateForBooking отображает статус бронирования в состояние слота
// Отмененные бронирования не влияют на состояние
func stateForBooking(b *domain.Booking) domain.SlotState {
	switch b.Status {
	case domain.StatusConfirmed:
		return domain.SlotConfirmed
	case domain.StatusPending:
		return domain.SlotPending
	case domain.StatusRejected:
		return domain.SlotRejected
	default:
		return ""
	}
}
