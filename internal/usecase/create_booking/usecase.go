package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/booking"
	facilityClient "github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/facilityservice"
	identityClient "github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/identityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/notify"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	scheduleRepo   ScheduleRepository
	facilityClient FacilityServiceClient
	identityClient IdentityServiceClient
	notifier       Notifier
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	facilityClient FacilityServiceClient,
	identityClient IdentityServiceClient,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		scheduleRepo:   scheduleRepo,
		facilityClient: facilityClient,
		identityClient: identityClient,
		notifier:       notifier,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Все слоты заявки создаются атомарно: либо заявка целиком,
// либо ничего. Проверка занятости и вставка идут в одной serializable
// транзакции, финальной защитой служит уникальный индекс в БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: facility=%d, date=%s, slots=%v",
		req.FacilityID, req.Date.Format(domain.DateFormat), req.SlotIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем объект
	facility, err := uc.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			uc.logger.Warn("CreateBooking: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	if !facility.HasSchedule() {
		uc.logger.Warn("CreateBooking: facility id=%d has no schedule", req.FacilityID)
		return nil, ErrNoSchedule
	}

	// 3. Определяем имя и контакт заявителя
	requesterName, contact, err := uc.resolveRequester(ctx, req)
	if err != nil {
		return nil, err
	}

	// Описание по умолчанию совпадает с контактом: у заявки всегда есть текст
	description := req.Description
	if description == nil || *description == "" {
		description = &contact
	}

	// 4. Создаем бронирования в одной транзакции
	correlationCode := uuid.NewString()

	var created []*domain.Booking
	var slotsByID map[int64]*domain.Slot

	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		slots, err := uc.scheduleRepo.ListSlots(ctx, *facility.ScheduleID)
		if err != nil {
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		slotsByID = make(map[int64]*domain.Slot, len(slots))
		for _, slot := range slots {
			slotsByID[slot.ID] = slot
		}

		// Каждый выбранный слот должен существовать в расписании объекта
		for _, slotID := range req.SlotIDs {
			if _, ok := slotsByID[slotID]; !ok {
				return fmt.Errorf("%w: slotID=%d", ErrSlotNotFound, slotID)
			}
		}

		// Запрос внутри транзакции блокирует строки (FOR UPDATE)
		// и выступает проверкой устаревшего выбора
		active, err := uc.bookingRepo.GetByFacilityWithFilter(ctx, domain.FacilityBookingsFilter{
			FacilityID: req.FacilityID,
			StartDate:  ptr.Ptr(req.Date),
			EndDate:    ptr.Ptr(req.Date),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to check existing bookings: %v", ErrInternal, err)
		}

		// Занятость определяют только активные статусы:
		// rejected и cancelled не блокируют повторное бронирование
		occupied := make(map[int64]struct{}, len(active))
		for _, b := range active {
			if !b.IsActive() {
				continue
			}
			occupied[b.SlotID] = struct{}{}
		}

		for _, slotID := range req.SlotIDs {
			if _, ok := occupied[slotID]; ok {
				return fmt.Errorf("%w: slotID=%d", ErrStaleSelection, slotID)
			}
		}

		bookings := make([]*domain.Booking, len(req.SlotIDs))
		for i, slotID := range req.SlotIDs {
			bookings[i] = &domain.Booking{
				CorrelationCode:  correlationCode,
				FacilityID:       req.FacilityID,
				ScheduleID:       *facility.ScheduleID,
				SlotID:           slotID,
				BookingDate:      req.Date,
				UserID:           req.UserID,
				Status:           domain.StatusPending,
				FacilityName:     facility.Name,
				RequesterContact: contact,
				Description:      description,
			}
		}

		created, err = uc.bookingRepo.CreateBatch(ctx, bookings)
		if err != nil {
			if errors.Is(err, booking.ErrSlotConflict) {
				return fmt.Errorf("%w: %v", ErrSlotConflict, err)
			}
			return fmt.Errorf("%w: failed to create bookings: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound),
			errors.Is(err, ErrStaleSelection),
			errors.Is(err, ErrSlotConflict):
			uc.logger.Warn("CreateBooking: %v", err)
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created %d bookings, correlation=%s", len(created), correlationCode)

	// 5. Уведомляем ответственное лицо; ошибка доставки не отменяет бронирование
	uc.publishCreated(ctx, req, facility, created, slotsByID, requesterName, contact, correlationCode)

	return buildResponse(req, created, slotsByID), nil
}

// resolveRequester определяет имя и контакт заявителя
// Для зарегистрированного пользователя контакт по умолчанию берется из профиля
func (uc *UseCase) resolveRequester(ctx context.Context, req *Request) (string, string, error) {
	if req.UserID == nil {
		return *req.Contact, *req.Contact, nil
	}

	user, err := uc.identityClient.GetUser(ctx, *req.UserID)
	if err != nil {
		if errors.Is(err, identityClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", *req.UserID)
			return "", "", ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", *req.UserID, err)
		return "", "", fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	contact := user.Contact()
	if req.Contact != nil && *req.Contact != "" {
		contact = *req.Contact
	}

	return user.Name, contact, nil
}

// publishCreated публикует событие о созданной заявке
func (uc *UseCase) publishCreated(
	ctx context.Context,
	req *Request,
	facility *facilityClient.Facility,
	created []*domain.Booking,
	slotsByID map[int64]*domain.Slot,
	requesterName string,
	contact string,
	correlationCode string,
) {
	event := notify.BookingEvent{
		CorrelationCode:     correlationCode,
		BookingIDs:          make([]int64, len(created)),
		FacilityID:          facility.ID,
		FacilityName:        facility.Name,
		BookingDate:         req.Date.Format(domain.DateFormat),
		RequesterName:       requesterName,
		RequesterContact:    contact,
		ResponsiblePersonID: facility.ResponsiblePersonID,
		Status:              string(domain.StatusPending),
	}

	for i, b := range created {
		event.BookingIDs[i] = b.ID
	}

	// Временной диапазон заявки: от начала первого слота до конца последнего
	if first, ok := slotsByID[created[0].SlotID]; ok {
		event.StartTime = first.StartTime.String()
	}
	if last, ok := slotsByID[created[len(created)-1].SlotID]; ok {
		event.EndTime = last.EndTime.String()
	}

	if err := uc.notifier.PublishBookingCreated(ctx, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish notification, correlation=%s: %v", correlationCode, err)
	}
}
