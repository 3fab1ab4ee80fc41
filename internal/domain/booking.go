package domain

import (
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a slot reservation for a facility on a specific date
type Booking struct {
	ID              int64
	CorrelationCode string // Общий код для бронирований, созданных одним запросом
	FacilityID      int64
	ScheduleID      int64
	SlotID          int64
	BookingDate     time.Time
	UserID          *int64 // nil = гостевое бронирование
	Status          BookingStatus

	// Denormalized data for history and guest bookings
	FacilityName     string
	RequesterContact string
	Description      *string
	Comment          *string

	ApprovedBy *int64
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its slot for other requesters
func (b *Booking) IsActive() bool {
	for _, s := range ActiveStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}

// IsPending returns true if the booking awaits a decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsTerminal returns true if the booking reached a final state
// Only a reschedule by the responsible person may move it out of a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusConfirmed || b.Status == StatusRejected || b.Status == StatusCancelled
}

// IsOwnedBy returns true if the booking belongs to the given authenticated user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}

// FacilityBookingsFilter фильтр для получения бронирований объекта
type FacilityBookingsFilter struct {
	FacilityID      int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отклоненные и отмененные бронирования
}
