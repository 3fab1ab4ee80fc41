package bookings

import (
	"context"
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/identityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/notify"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, actorID int64, comment *string) error
	Reschedule(ctx context.Context, id int64, newDate time.Time, newSlotID *int64, status domain.BookingStatus, actorID int64) error
	ReassignUser(ctx context.Context, id int64, newUserID int64, description *string) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSlot(ctx context.Context, slotID int64) (*domain.Slot, error)
}

// IdentityClient интерфейс клиента для IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
	IsResponsiblePersonFor(ctx context.Context, userID, facilityID int64) (bool, error)
}

// Notifier интерфейс издателя уведомлений
// Ошибки публикации нефатальны для операций сервиса
type Notifier interface {
	PublishBookingConfirmed(ctx context.Context, event notify.BookingEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
