package models

import (
	"errors"
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// RejectBookingRequest запрос на отклонение бронирования
type RejectBookingRequest struct {
	ActorID int64  `json:"actorId"`
	Comment string `json:"comment"`
}

// ChangeUserRequest запрос на переназначение бронирования другому пользователю
type ChangeUserRequest struct {
	ActorID     int64   `json:"actorId"`
	NewUserID   int64   `json:"newUserId"`
	Description *string `json:"description,omitempty"`
}

// ChangeDateRequest запрос на самостоятельный перенос бронирования
type ChangeDateRequest struct {
	ActorID int64     `json:"actorId"`
	NewDate time.Time `json:"newDate"`
}

// RescheduleRequest запрос на перенос с подтверждением ответственным лицом
type RescheduleRequest struct {
	ActorID   int64     `json:"actorId"`
	NewDate   time.Time `json:"newDate"`
	NewSlotID int64     `json:"newSlotId"`
}

// GetFacilityBookingsRequest запрос на получение бронирований объекта
type GetFacilityBookingsRequest struct {
	ActorID         int64      `json:"actorId"`
	FacilityID      int64      `json:"facilityId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive"`
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetFacilityBookingsRequest) ToDomainFilter() (domain.FacilityBookingsFilter, error) {
	filter := domain.FacilityBookingsFilter{
		FacilityID:      r.FacilityID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.FacilityBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse представление бронирования для вызывающего слоя
type BookingResponse struct {
	ID               int64      `json:"id"`
	CorrelationCode  string     `json:"correlationCode"`
	FacilityID       int64      `json:"facilityId"`
	ScheduleID       int64      `json:"scheduleId"`
	SlotID           int64      `json:"slotId"`
	BookingDate      string     `json:"bookingDate"`
	UserID           *int64     `json:"userId,omitempty"`
	Status           string     `json:"status"`
	FacilityName     string     `json:"facilityName"`
	RequesterContact string     `json:"requesterContact"`
	Description      *string    `json:"description,omitempty"`
	Comment          *string    `json:"comment,omitempty"`
	ApprovedBy       *int64     `json:"approvedBy,omitempty"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:               b.ID,
		CorrelationCode:  b.CorrelationCode,
		FacilityID:       b.FacilityID,
		ScheduleID:       b.ScheduleID,
		SlotID:           b.SlotID,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		UserID:           b.UserID,
		Status:           string(b.Status),
		FacilityName:     b.FacilityName,
		RequesterContact: b.RequesterContact,
		Description:      b.Description,
		Comment:          b.Comment,
		ApprovedBy:       b.ApprovedBy,
		ApprovedAt:       b.ApprovedAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	if !domain.IsValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}
