package delete_booking

import "context"

type BookingService interface {
	Remove(ctx context.Context, id int64, actorID int64, isAdmin bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
