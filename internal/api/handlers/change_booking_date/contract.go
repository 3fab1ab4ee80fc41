package change_booking_date

import (
	"context"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

type BookingService interface {
	ChangeDate(ctx context.Context, id int64, req *models.ChangeDateRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
