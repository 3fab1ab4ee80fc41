package catalog

import (
	"context"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetSchedule(ctx context.Context, id int64) (*domain.Schedule, error)
	ListSlots(ctx context.Context, scheduleID int64) ([]*domain.Slot, error)
	ReplaceSlots(ctx context.Context, scheduleID int64, slots []domain.SlotInput) ([]*domain.Slot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
