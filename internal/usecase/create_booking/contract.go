package create_booking

import (
	"context"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/facilityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/identityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/notify"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ListSlots(ctx context.Context, scheduleID int64) ([]*domain.Slot, error)
}

// FacilityServiceClient интерфейс клиента для FacilityService
type FacilityServiceClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*facilityservice.Facility, error)
}

// IdentityServiceClient интерфейс клиента для IdentityService
type IdentityServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// Notifier интерфейс публикации событий бронирований
type Notifier interface {
	PublishBookingCreated(ctx context.Context, event notify.BookingEvent) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
