package get_availability

import (
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

// Request модель запроса на разрешение доступности слотов
type Request struct {
	FacilityID int64     // ID объекта бронирования
	Date       time.Time // Дата (без времени)
}

// Response модель ответа с состоянием каждого слота каталога
type Response struct {
	FacilityID int64  // ID объекта
	ScheduleID int64  // ID расписания объекта
	Date       time.Time
	Slots      []SlotAvailability
}

// SlotAvailability состояние одного слота на запрошенную дату
type SlotAvailability struct {
	SlotID     int64            // ID слота
	StartTime  types.TimeString // Время начала
	EndTime    types.TimeString // Время конца
	Size       int              // Вместимость слота
	State      string           // available | pending | confirmed | rejected
	OccupiedBy *int64           // Пользователь активного бронирования, если есть
}
