package update_schedule_slots

import (
	"context"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
)

type CatalogService interface {
	ReplaceSlots(ctx context.Context, scheduleID int64, slots []domain.SlotInput) ([]*domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
