package create_booking

import (
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

// Request модель запроса на создание бронирования
//
// SlotIDs — итог работы селектора: один или несколько слотов одной даты.
// UserID опционален: заявку может оставить и незарегистрированный посетитель,
// тогда Contact обязателен
type Request struct {
	FacilityID  int64     // ID объекта бронирования
	Date        time.Time // Дата бронирования
	SlotIDs     []int64   // Выбранные слоты
	UserID      *int64    // ID пользователя, если заявка от зарегистрированного
	Contact     *string   // Контакт для связи
	Description *string   // Описание цели бронирования
}

// Response модель ответа на создание бронирования
type Response struct {
	CorrelationCode string           // Общий код заявки для всех созданных бронирований
	FacilityID      int64            // ID объекта
	Date            time.Time        // Дата бронирования
	Status          string           // Статус созданных бронирований (pending)
	Bookings        []CreatedBooking // Созданные бронирования в порядке слотов
}

// CreatedBooking одно созданное бронирование
type CreatedBooking struct {
	ID        int64            // ID бронирования
	SlotID    int64            // ID слота
	StartTime types.TimeString // Время начала слота
	EndTime   types.TimeString // Время конца слота
}

// buildResponse собирает модель ответа из созданных бронирований
func buildResponse(req *Request, created []*domain.Booking, slotsByID map[int64]*domain.Slot) *Response {
	response := &Response{
		FacilityID: req.FacilityID,
		Date:       req.Date,
		Status:     string(domain.StatusPending),
		Bookings:   make([]CreatedBooking, len(created)),
	}

	for i, b := range created {
		if i == 0 {
			response.CorrelationCode = b.CorrelationCode
		}

		item := CreatedBooking{
			ID:     b.ID,
			SlotID: b.SlotID,
		}

		if slot, ok := slotsByID[b.SlotID]; ok {
			item.StartTime = slot.StartTime
			item.EndTime = slot.EndTime
		}

		response.Bookings[i] = item
	}

	return response
}
