package get_availability

import (
	"context"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/usecase/get_availability"
)

type AvailabilityUseCase interface {
	Execute(ctx context.Context, req *get_availability.Request) (*get_availability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
