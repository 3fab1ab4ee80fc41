package change_booking_user

import (
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

// ChangeUserRequest HTTP request model
type ChangeUserRequest struct {
	NewUserID   int64   `json:"newUserId"`
	Description *string `json:"description,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ChangeUserRequest) ToServiceRequest(actorID int64) *models.ChangeUserRequest {
	return &models.ChangeUserRequest{
		ActorID:     actorID,
		NewUserID:   r.NewUserID,
		Description: r.Description,
	}
}
