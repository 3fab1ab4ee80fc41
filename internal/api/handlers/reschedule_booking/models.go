package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	NewDate   string `json:"newDate"` // YYYY-MM-DD
	NewSlotID int64  `json:"newSlotId"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RescheduleBookingRequest) ToServiceRequest(actorID int64) (*models.RescheduleRequest, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, fmt.Errorf("invalid newDate %q: %w", r.NewDate, err)
	}

	return &models.RescheduleRequest{
		ActorID:   actorID,
		NewDate:   newDate,
		NewSlotID: r.NewSlotID,
	}, nil
}
