package create_booking

import (
	"fmt"
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FacilityID  int64   `json:"facilityId"`
	Date        string  `json:"date"` // YYYY-MM-DD
	SlotIDs     []int64 `json:"slotIds"`
	Contact     *string `json:"contact,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
// userID приходит из auth-контекста, а не из тела запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) (*create_booking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	return &create_booking.Request{
		FacilityID:  r.FacilityID,
		Date:        date,
		SlotIDs:     r.SlotIDs,
		UserID:      userID,
		Contact:     r.Contact,
		Description: r.Description,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	CorrelationCode string        `json:"correlationCode"`
	FacilityID      int64         `json:"facilityId"`
	Date            string        `json:"date"`
	Status          string        `json:"status"`
	Bookings        []BookingItem `json:"bookings"`
}

// BookingItem одно созданное бронирование
type BookingItem struct {
	ID        int64  `json:"id"`
	SlotID    int64  `json:"slotId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует модель usecase в HTTP response
func FromUseCaseResponse(resp *create_booking.Response) *CreateBookingResponse {
	result := &CreateBookingResponse{
		CorrelationCode: resp.CorrelationCode,
		FacilityID:      resp.FacilityID,
		Date:            resp.Date.Format(domain.DateFormat),
		Status:          resp.Status,
		Bookings:        make([]BookingItem, len(resp.Bookings)),
	}

	for i, b := range resp.Bookings {
		result.Bookings[i] = BookingItem{
			ID:        b.ID,
			SlotID:    b.SlotID,
			StartTime: b.StartTime.String(),
			EndTime:   b.EndTime.String(),
		}
	}

	return result
}
