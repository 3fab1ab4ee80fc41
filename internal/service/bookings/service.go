package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	bookingRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/booking"
	scheduleRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/schedule"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/notify"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
// Все переходы статусов проходят авторизацию до записи в хранилище:
// accept/reject/changeUser/reschedule доступны только ответственному лицу объекта,
// cancel/changeDate - владельцу бронирования, remove - администратору
type Service struct {
	bookingRepo    BookingRepository
	scheduleRepo   ScheduleRepository
	identityClient IdentityClient
	notifier       Notifier
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	identityClient IdentityClient,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		scheduleRepo:   scheduleRepo,
		identityClient: identityClient,
		notifier:       notifier,
		logger:         logger,
	}
}

// GetByID получает бронирование по ID
// Доступно владельцу бронирования и ответственному лицу объекта
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.BookingResponse, error) {
	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !booking.IsOwnedBy(actorID) {
		if err := s.requireResponsible(ctx, booking.FacilityID, actorID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actorID, id)
			return nil, err
		}
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, userID int64, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", userID, status)

	var domainStatus *domain.BookingStatus
	if status != nil {
		converted, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *status, userID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &converted
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetFacilityBookings получает бронирования объекта с фильтрацией
// Доступно только ответственному лицу объекта
func (s *Service) GetFacilityBookings(ctx context.Context, req *models.GetFacilityBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetFacilityBookings: fetching bookings for facility=%d, actor=%d", req.FacilityID, req.ActorID)

	if err := s.requireResponsible(ctx, req.FacilityID, req.ActorID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetFacilityBookings: invalid filter for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByFacilityWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetFacilityBookings: repository error for facility=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityBookings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Accept подтверждает ожидающее бронирование
// Доступно только ответственному лицу; допустим только переход pending -> confirmed
func (s *Service) Accept(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("Accept: booking id=%d by actor=%d", id, actorID)

	booking, err := s.getBooking(ctx, "Accept", id)
	if err != nil {
		return err
	}

	if err := s.requireResponsible(ctx, booking.FacilityID, actorID); err != nil {
		s.logger.Warn("Accept: access denied for actor=%d on booking id=%d", actorID, id)
		return err
	}

	if !booking.IsPending() {
		s.logger.Warn("Accept: booking id=%d is not pending, status=%s", id, booking.Status)
		return ErrInvalidTransition
	}

	if err := s.updateStatus(ctx, "Accept", id, domain.StatusConfirmed, actorID, nil); err != nil {
		return err
	}

	s.notifyConfirmed(ctx, booking)

	s.logger.Info("Accept: booking id=%d confirmed by actor=%d", id, actorID)
	return nil
}

// Reject отклоняет ожидающее бронирование с обязательным комментарием
// Доступно только ответственному лицу; допустим только переход pending -> rejected
func (s *Service) Reject(ctx context.Context, id int64, req *models.RejectBookingRequest) error {
	s.logger.Info("Reject: booking id=%d by actor=%d", id, req.ActorID)

	if req.Comment == "" {
		s.logger.Warn("Reject: missing comment for booking id=%d", id)
		return fmt.Errorf("%w: rejection comment is required", ErrInvalidInput)
	}
	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	booking, err := s.getBooking(ctx, "Reject", id)
	if err != nil {
		return err
	}

	if err := s.requireResponsible(ctx, booking.FacilityID, req.ActorID); err != nil {
		s.logger.Warn("Reject: access denied for actor=%d on booking id=%d", req.ActorID, id)
		return err
	}

	if !booking.IsPending() {
		s.logger.Warn("Reject: booking id=%d is not pending, status=%s", id, booking.Status)
		return ErrInvalidTransition
	}

	if err := s.updateStatus(ctx, "Reject", id, domain.StatusRejected, req.ActorID, &req.Comment); err != nil {
		return err
	}

	s.logger.Info("Reject: booking id=%d rejected by actor=%d", id, req.ActorID)
	return nil
}

// Cancel отменяет собственное ожидающее бронирование
// Гостевые бронирования (user_id IS NULL) через этот путь не отменяются
func (s *Service) Cancel(ctx context.Context, id int64, actorID int64) error {
	s.logger.Info("Cancel: booking id=%d by actor=%d", id, actorID)

	booking, err := s.getBooking(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if !booking.IsOwnedBy(actorID) {
		s.logger.Warn("Cancel: actor=%d is not the owner of booking id=%d", actorID, id)
		return ErrUnauthorized
	}

	if !booking.IsPending() {
		s.logger.Warn("Cancel: booking id=%d is not pending, status=%s", id, booking.Status)
		return ErrInvalidTransition
	}

	if err := s.updateStatus(ctx, "Cancel", id, domain.StatusCancelled, actorID, nil); err != nil {
		return err
	}

	s.logger.Info("Cancel: booking id=%d cancelled by owner=%d", id, actorID)
	return nil
}

// ChangeUser переназначает бронирование другому пользователю
// Доступно только ответственному лицу; статус бронирования не меняется
func (s *Service) ChangeUser(ctx context.Context, id int64, req *models.ChangeUserRequest) error {
	s.logger.Info("ChangeUser: booking id=%d, new user=%d, actor=%d", id, req.NewUserID, req.ActorID)

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	booking, err := s.getBooking(ctx, "ChangeUser", id)
	if err != nil {
		return err
	}

	if err := s.requireResponsible(ctx, booking.FacilityID, req.ActorID); err != nil {
		s.logger.Warn("ChangeUser: access denied for actor=%d on booking id=%d", req.ActorID, id)
		return err
	}

	// Переназначать можно только на существующего пользователя
	if _, err := s.identityClient.GetUser(ctx, req.NewUserID); err != nil {
		s.logger.Warn("ChangeUser: new user id=%d lookup failed: %v", req.NewUserID, err)
		return fmt.Errorf("%w: user id=%d", ErrInvalidInput, req.NewUserID)
	}

	if err := s.bookingRepo.ReassignUser(ctx, id, req.NewUserID, req.Description); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("ChangeUser: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: ChangeUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ChangeUser: booking id=%d reassigned to user=%d", id, req.NewUserID)
	return nil
}

// ChangeDate переносит собственное ожидающее бронирование на новую дату
// Статус остается pending, слот не меняется
func (s *Service) ChangeDate(ctx context.Context, id int64, req *models.ChangeDateRequest) error {
	s.logger.Info("ChangeDate: booking id=%d to %s by actor=%d",
		id, req.NewDate.Format(domain.DateFormat), req.ActorID)

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "ChangeDate", id)
	if err != nil {
		return err
	}

	if !booking.IsOwnedBy(req.ActorID) {
		s.logger.Warn("ChangeDate: actor=%d is not the owner of booking id=%d", req.ActorID, id)
		return ErrUnauthorized
	}

	if !booking.IsPending() {
		s.logger.Warn("ChangeDate: booking id=%d is not pending, status=%s", id, booking.Status)
		return ErrInvalidTransition
	}

	if err := s.reschedule(ctx, "ChangeDate", id, req.NewDate, nil, domain.StatusPending, req.ActorID); err != nil {
		return err
	}

	s.logger.Info("ChangeDate: booking id=%d moved to %s", id, req.NewDate.Format(domain.DateFormat))
	return nil
}

// RescheduleAndConfirm переносит бронирование на новую дату и слот и подтверждает его
// Единственный переход, допустимый из терминальных статусов; доступен только ответственному лицу
func (s *Service) RescheduleAndConfirm(ctx context.Context, id int64, req *models.RescheduleRequest) error {
	s.logger.Info("RescheduleAndConfirm: booking id=%d to %s slot=%d by actor=%d",
		id, req.NewDate.Format(domain.DateFormat), req.NewSlotID, req.ActorID)

	if req.NewDate.IsZero() {
		return fmt.Errorf("%w: new date is required", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, "RescheduleAndConfirm", id)
	if err != nil {
		return err
	}

	if err := s.requireResponsible(ctx, booking.FacilityID, req.ActorID); err != nil {
		s.logger.Warn("RescheduleAndConfirm: access denied for actor=%d on booking id=%d", req.ActorID, id)
		return err
	}

	// Целевой слот должен существовать и принадлежать расписанию бронирования
	slot, err := s.scheduleRepo.GetSlot(ctx, req.NewSlotID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotNotFound) {
			s.logger.Warn("RescheduleAndConfirm: slot id=%d not found", req.NewSlotID)
			return ErrSlotNotFound
		}
		s.logger.Error("RescheduleAndConfirm: slot lookup failed for id=%d: %v", req.NewSlotID, err)
		return fmt.Errorf("%w: RescheduleAndConfirm - slot lookup: %v", ErrInternal, err)
	}
	if slot.ScheduleID != booking.ScheduleID {
		s.logger.Warn("RescheduleAndConfirm: slot id=%d belongs to schedule=%d, booking uses schedule=%d",
			req.NewSlotID, slot.ScheduleID, booking.ScheduleID)
		return fmt.Errorf("%w: slot does not belong to the booking schedule", ErrInvalidInput)
	}
	if slot.Archived {
		s.logger.Warn("RescheduleAndConfirm: slot id=%d is archived", req.NewSlotID)
		return fmt.Errorf("%w: slot is no longer part of the schedule catalog", ErrInvalidInput)
	}

	if err := s.reschedule(ctx, "RescheduleAndConfirm", id, req.NewDate, &req.NewSlotID, domain.StatusConfirmed, req.ActorID); err != nil {
		return err
	}

	booking.BookingDate = req.NewDate
	booking.SlotID = req.NewSlotID
	s.notifyConfirmed(ctx, booking)

	s.logger.Info("RescheduleAndConfirm: booking id=%d confirmed on %s slot=%d",
		id, req.NewDate.Format(domain.DateFormat), req.NewSlotID)
	return nil
}

// Remove физически удаляет бронирование в обход жизненного цикла
// Доступно только администратору
func (s *Service) Remove(ctx context.Context, id int64, actorID int64, isAdmin bool) error {
	s.logger.Info("Remove: booking id=%d by actor=%d", id, actorID)

	if !isAdmin {
		s.logger.Warn("Remove: actor=%d is not an admin", actorID)
		return ErrUnauthorized
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Remove: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Remove: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: booking id=%d deleted by admin=%d", id, actorID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// requireResponsible проверяет через IdentityService, что актор является
// ответственным лицом объекта. Ядро доверяет этому флагу
func (s *Service) requireResponsible(ctx context.Context, facilityID, actorID int64) error {
	responsible, err := s.identityClient.IsResponsiblePersonFor(ctx, actorID, facilityID)
	if err != nil {
		s.logger.Error("requireResponsible: identity check failed for actor=%d, facility=%d: %v",
			actorID, facilityID, err)
		return fmt.Errorf("%w: identity check failed: %v", ErrInternal, err)
	}
	if !responsible {
		return ErrUnauthorized
	}
	return nil
}

func (s *Service) updateStatus(ctx context.Context, op string, id int64, status domain.BookingStatus, actorID int64, comment *string) error {
	if err := s.bookingRepo.UpdateStatus(ctx, id, status, actorID, comment); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) reschedule(ctx context.Context, op string, id int64, newDate time.Time, newSlotID *int64, status domain.BookingStatus, actorID int64) error {
	if err := s.bookingRepo.Reschedule(ctx, id, newDate, newSlotID, status, actorID); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotConflict):
			s.logger.Warn("%s: target slot is taken for booking id=%d", op, id)
			return ErrSlotConflict
		default:
			s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
	}
	return nil
}

// notifyConfirmed отправляет уведомление о подтверждении; сбой доставки нефатален
func (s *Service) notifyConfirmed(ctx context.Context, booking *domain.Booking) {
	event := notify.BookingEvent{
		CorrelationCode:  booking.CorrelationCode,
		BookingIDs:       []int64{booking.ID},
		FacilityID:       booking.FacilityID,
		FacilityName:     booking.FacilityName,
		BookingDate:      booking.BookingDate.Format(domain.DateFormat),
		RequesterContact: booking.RequesterContact,
		Status:           string(domain.StatusConfirmed),
	}

	if slot, err := s.scheduleRepo.GetSlot(ctx, booking.SlotID); err == nil {
		event.StartTime = slot.StartTime.String()
		event.EndTime = slot.EndTime.String()
	}

	if err := s.notifier.PublishBookingConfirmed(ctx, event); err != nil {
		s.logger.Warn("notifyConfirmed: delivery failed for booking id=%d: %v", booking.ID, err)
	}
}
