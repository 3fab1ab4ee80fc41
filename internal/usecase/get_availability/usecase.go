package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	facilityClient "github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/facilityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/ptr"
)

// UseCase use case для разрешения доступности слотов объекта на дату
type UseCase struct {
	bookingRepo    BookingRepository
	scheduleRepo   ScheduleRepository
	facilityClient FacilityServiceClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	facilityClient FacilityServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		scheduleRepo:   scheduleRepo,
		facilityClient: facilityClient,
		logger:         logger,
	}
}

// Execute выполняет use case разрешения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: facility=%d, date=%s",
		req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			uc.logger.Warn("GetAvailability: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 3. Объект без расписания не бронируется
	if !facility.HasSchedule() {
		uc.logger.Warn("GetAvailability: facility id=%d has no schedule", req.FacilityID)
		return nil, ErrNoSchedule
	}

	// 4. Получаем каталог слотов (хронологический порядок)
	slots, err := uc.scheduleRepo.ListSlots(ctx, *facility.ScheduleID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list slots for schedule=%d: %v", *facility.ScheduleID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 5. Получаем бронирования на дату, включая отклоненные:
	// rejected отображается отдельным состоянием и снова доступен для выбора
	filter := domain.FacilityBookingsFilter{
		FacilityID:      req.FacilityID,
		StartDate:       ptr.Ptr(req.Date),
		EndDate:         ptr.Ptr(req.Date),
		IncludeInactive: true,
	}

	bookings, err := uc.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем состояние каждого слота
	resolved := resolveSlotStates(slots, bookings)

	response := &Response{
		FacilityID: req.FacilityID,
		ScheduleID: *facility.ScheduleID,
		Date:       req.Date,
		Slots:      make([]SlotAvailability, len(resolved)),
	}

	for i, a := range resolved {
		response.Slots[i] = SlotAvailability{
			SlotID:     a.Slot.ID,
			StartTime:  a.Slot.StartTime,
			EndTime:    a.Slot.EndTime,
			Size:       a.Slot.Size,
			State:      string(a.State),
			OccupiedBy: a.OccupiedBy,
		}
	}

	uc.logger.Info("GetAvailability: resolved %d slots for facility=%d, date=%s",
		len(response.Slots), req.FacilityID, req.Date.Format(domain.DateFormat))

	return response, nil
}
