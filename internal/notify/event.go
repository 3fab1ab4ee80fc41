// Package notify публикует события бронирований в очередь уведомлений.
// Ошибки доставки логируются и возвращаются вызывающей стороне, которая
// обязана считать их нефатальными: бронирование важнее уведомления.
package notify

// BookingEvent payload уведомления для ответственного лица объекта
// Содержит достаточно данных для письма или сообщения без похода в БД
type BookingEvent struct {
	CorrelationCode     string  `json:"correlation_code"`
	BookingIDs          []int64 `json:"booking_ids"`
	FacilityID          int64   `json:"facility_id"`
	FacilityName        string  `json:"facility_name"`
	BookingDate         string  `json:"booking_date"` // YYYY-MM-DD
	StartTime           string  `json:"start_time"`   // HH:MM
	EndTime             string  `json:"end_time"`     // HH:MM
	RequesterName       string  `json:"requester_name"`
	RequesterContact    string  `json:"requester_contact"`
	ResponsiblePersonID *int64  `json:"responsible_person_id,omitempty"`
	Status              string  `json:"status"`
}
