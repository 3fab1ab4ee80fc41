package reject_booking

import (
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

// RejectBookingRequest HTTP request model
type RejectBookingRequest struct {
	Comment string `json:"comment"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RejectBookingRequest) ToServiceRequest(actorID int64) *models.RejectBookingRequest {
	return &models.RejectBookingRequest{
		ActorID: actorID,
		Comment: r.Comment,
	}
}
