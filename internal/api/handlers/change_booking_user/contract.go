package change_booking_user

import (
	"context"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

type BookingService interface {
	ChangeUser(ctx context.Context, id int64, req *models.ChangeUserRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
