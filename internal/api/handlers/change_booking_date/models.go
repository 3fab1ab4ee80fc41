package change_booking_date

import (
	"fmt"
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

// ChangeDateRequest HTTP request model
type ChangeDateRequest struct {
	NewDate string `json:"newDate"` // YYYY-MM-DD
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ChangeDateRequest) ToServiceRequest(actorID int64) (*models.ChangeDateRequest, error) {
	newDate, err := time.Parse(domain.DateFormat, r.NewDate)
	if err != nil {
		return nil, fmt.Errorf("invalid newDate %q: %w", r.NewDate, err)
	}

	return &models.ChangeDateRequest{
		ActorID: actorID,
		NewDate: newDate,
	}, nil
}
