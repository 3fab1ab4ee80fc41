package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	bookingRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/booking"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/identityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/notify"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/ptr"
)

// Моки репозиториев и клиентов

type mockBookingRepo struct {
	booking *domain.Booking
	getErr  error

	updateStatusCalled bool
	updatedStatus      domain.BookingStatus
	updatedActor       int64
	updatedComment     *string
	updateErr          error

	rescheduleCalled bool
	rescheduledDate  time.Time
	rescheduledSlot  *int64
	rescheduleStatus domain.BookingStatus
	rescheduleErr    error

	reassignCalled bool
	reassignedTo   int64

	deleteCalled bool
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.booking, nil
}

func (m *mockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepo) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, actorID int64, comment *string) error {
	m.updateStatusCalled = true
	m.updatedStatus = status
	m.updatedActor = actorID
	m.updatedComment = comment
	return m.updateErr
}

func (m *mockBookingRepo) Reschedule(ctx context.Context, id int64, newDate time.Time, newSlotID *int64, status domain.BookingStatus, actorID int64) error {
	m.rescheduleCalled = true
	m.rescheduledDate = newDate
	m.rescheduledSlot = newSlotID
	m.rescheduleStatus = status
	return m.rescheduleErr
}

func (m *mockBookingRepo) ReassignUser(ctx context.Context, id int64, newUserID int64, description *string) error {
	m.reassignCalled = true
	m.reassignedTo = newUserID
	return nil
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	m.deleteCalled = true
	return nil
}

type mockScheduleRepo struct {
	slot *domain.Slot
	err  error
}

func (m *mockScheduleRepo) GetSlot(ctx context.Context, slotID int64) (*domain.Slot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.slot, nil
}

type mockIdentityClient struct {
	responsible bool
	respErr     error
	user        *identityservice.User
	userErr     error
}

func (m *mockIdentityClient) GetUser(ctx context.Context, userID int64) (*identityservice.User, error) {
	if m.userErr != nil {
		return nil, m.userErr
	}
	return m.user, nil
}

func (m *mockIdentityClient) IsResponsiblePersonFor(ctx context.Context, userID, facilityID int64) (bool, error) {
	return m.responsible, m.respErr
}

type mockNotifier struct {
	confirmed []notify.BookingEvent
	err       error
}

func (m *mockNotifier) PublishBookingConfirmed(ctx context.Context, event notify.BookingEvent) error {
	m.confirmed = append(m.confirmed, event)
	return m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		FacilityID:   10,
		ScheduleID:   5,
		SlotID:       3,
		BookingDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		UserID:       ptr.Ptr(int64(42)),
		Status:       domain.StatusPending,
		FacilityName: "Переговорная А",
	}
}

func newTestService(repo *mockBookingRepo, identity *mockIdentityClient, notifier *mockNotifier) *Service {
	return NewService(
		repo,
		&mockScheduleRepo{slot: &domain.Slot{ID: 3, ScheduleID: 5, StartTime: "07:00", EndTime: "07:30", Size: 1}},
		identity,
		notifier,
		nopLogger{},
	)
}

func TestAccept_PendingConfirmed(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	notifier := &mockNotifier{}
	svc := newTestService(repo, &mockIdentityClient{responsible: true}, notifier)

	err := svc.Accept(context.Background(), 1, 99)
	require.NoError(t, err)

	assert.True(t, repo.updateStatusCalled)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
	assert.Equal(t, int64(99), repo.updatedActor)

	// Подтверждение публикует уведомление с временным диапазоном слота
	require.Len(t, notifier.confirmed, 1)
	assert.Equal(t, "07:00", notifier.confirmed[0].StartTime)
	assert.Equal(t, string(domain.StatusConfirmed), notifier.confirmed[0].Status)
}

func TestAccept_NotResponsible(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{responsible: false}, &mockNotifier{})

	err := svc.Accept(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Авторизация проверяется до любой записи
	assert.False(t, repo.updateStatusCalled)
}

func TestAccept_NotPending(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	repo := &mockBookingRepo{booking: booking}
	svc := newTestService(repo, &mockIdentityClient{responsible: true}, &mockNotifier{})

	err := svc.Accept(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, repo.updateStatusCalled)
}

func TestAccept_UnknownBooking(t *testing.T) {
	repo := &mockBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := newTestService(repo, &mockIdentityClient{responsible: true}, &mockNotifier{})

	err := svc.Accept(context.Background(), 404, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAccept_NotifierFailureIsNonFatal(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	notifier := &mockNotifier{err: assert.AnError}
	svc := newTestService(repo, &mockIdentityClient{responsible: true}, notifier)

	err := svc.Accept(context.Background(), 1, 99)
	assert.NoError(t, err)
	assert.True(t, repo.updateStatusCalled)
}

func TestReject_RequiresComment(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{responsible: true}, &mockNotifier{})

	err := svc.Reject(context.Background(), 1, &models.RejectBookingRequest{ActorID: 99})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, repo.updateStatusCalled)
}

func TestReject_StoresComment(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{responsible: true}, &mockNotifier{})

	err := svc.Reject(context.Background(), 1, &models.RejectBookingRequest{
		ActorID: 99,
		Comment: "объект закрыт на ремонт",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRejected, repo.updatedStatus)
	require.NotNil(t, repo.updatedComment)
	assert.Equal(t, "объект закрыт на ремонт", *repo.updatedComment)
}

func TestReject_NotResponsible(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{responsible: false}, &mockNotifier{})

	err := svc.Reject(context.Background(), 1, &models.RejectBookingRequest{
		ActorID: 99,
		Comment: "нет",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, repo.updateStatusCalled)
}

func TestCancel_OwnerPending(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{}, &mockNotifier{})

	err := svc.Cancel(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)
}

func TestCancel_NotOwner(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{}, &mockNotifier{})

	err := svc.Cancel(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, repo.updateStatusCalled)
}

func TestCancel_NotPending(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.StatusConfirmed
	repo := &mockBookingRepo{booking: booking}
	svc := newTestService(repo, &mockIdentityClient{}, &mockNotifier{})

	err := svc.Cancel(context.Background(), 1, 42)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestChangeUser_ReassignsExistingUser(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	identity := &mockIdentityClient{
		responsible: true,
		user:        &identityservice.User{ID: 77, Name: "Новый владелец"},
	}
	svc := newTestService(repo, identity, &mockNotifier{})

	err := svc.ChangeUser(context.Background(), 1, &models.ChangeUserRequest{
		ActorID:   99,
		NewUserID: 77,
	})
	require.NoError(t, err)
	assert.True(t, repo.reassignCalled)
	assert.Equal(t, int64(77), repo.reassignedTo)
}

func TestChangeUser_UnknownUser(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	identity := &mockIdentityClient{
		responsible: true,
		userErr:     identityservice.ErrUserNotFound,
	}
	svc := newTestService(repo, identity, &mockNotifier{})

	err := svc.ChangeUser(context.Background(), 1, &models.ChangeUserRequest{
		ActorID:   99,
		NewUserID: 77,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, repo.reassignCalled)
}

func TestChangeDate_OwnerKeepsPendingStatus(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{}, &mockNotifier{})

	newDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	err := svc.ChangeDate(context.Background(), 1, &models.ChangeDateRequest{
		ActorID: 42,
		NewDate: newDate,
	})
	require.NoError(t, err)

	assert.True(t, repo.rescheduleCalled)
	assert.Equal(t, newDate, repo.rescheduledDate)
	assert.Equal(t, domain.StatusPending, repo.rescheduleStatus)
	// Слот при самостоятельном переносе не меняется
	assert.Nil(t, repo.rescheduledSlot)
}

func TestChangeDate_TargetSlotTaken(t *testing.T) {
	repo := &mockBookingRepo{
		booking:       pendingBooking(),
		rescheduleErr: bookingRepo.ErrSlotConflict,
	}
	svc := newTestService(repo, &mockIdentityClient{}, &mockNotifier{})

	err := svc.ChangeDate(context.Background(), 1, &models.ChangeDateRequest{
		ActorID: 42,
		NewDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestRescheduleAndConfirm_FromTerminalStatus(t *testing.T) {
	// Единственный переход, допустимый из терминального статуса
	booking := pendingBooking()
	booking.Status = domain.StatusRejected
	repo := &mockBookingRepo{booking: booking}
	notifier := &mockNotifier{}
	svc := newTestService(repo, &mockIdentityClient{responsible: true}, notifier)

	err := svc.RescheduleAndConfirm(context.Background(), 1, &models.RescheduleRequest{
		ActorID:   99,
		NewDate:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		NewSlotID: 3,
	})
	require.NoError(t, err)

	assert.True(t, repo.rescheduleCalled)
	assert.Equal(t, domain.StatusConfirmed, repo.rescheduleStatus)
	require.NotNil(t, repo.rescheduledSlot)
	assert.Equal(t, int64(3), *repo.rescheduledSlot)
	assert.Len(t, notifier.confirmed, 1)
}

func TestRescheduleAndConfirm_SlotFromOtherSchedule(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := NewService(
		repo,
		&mockScheduleRepo{slot: &domain.Slot{ID: 3, ScheduleID: 999, StartTime: "07:00", EndTime: "07:30", Size: 1}},
		&mockIdentityClient{responsible: true},
		&mockNotifier{},
		nopLogger{},
	)

	err := svc.RescheduleAndConfirm(context.Background(), 1, &models.RescheduleRequest{
		ActorID:   99,
		NewDate:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		NewSlotID: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, repo.rescheduleCalled)
}

func TestRescheduleAndConfirm_ArchivedSlot(t *testing.T) {
	// Слот, вытесненный заменой каталога, остается читаемым для истории,
	// но перенести бронирование на него нельзя
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := NewService(
		repo,
		&mockScheduleRepo{slot: &domain.Slot{ID: 3, ScheduleID: 5, StartTime: "07:00", EndTime: "07:30", Size: 1, Archived: true}},
		&mockIdentityClient{responsible: true},
		&mockNotifier{},
		nopLogger{},
	)

	err := svc.RescheduleAndConfirm(context.Background(), 1, &models.RescheduleRequest{
		ActorID:   99,
		NewDate:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		NewSlotID: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.False(t, repo.rescheduleCalled)
}

func TestRemove_AdminOnly(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}
	svc := newTestService(repo, &mockIdentityClient{}, &mockNotifier{})

	err := svc.Remove(context.Background(), 1, 99, false)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, repo.deleteCalled)

	err = svc.Remove(context.Background(), 1, 99, true)
	require.NoError(t, err)
	assert.True(t, repo.deleteCalled)
}

func TestGetByID_OwnerOrResponsible(t *testing.T) {
	repo := &mockBookingRepo{booking: pendingBooking()}

	// Владелец видит бронирование без проверки ответственности
	svc := newTestService(repo, &mockIdentityClient{responsible: false}, &mockNotifier{})
	resp, err := svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Посторонний получает отказ
	_, err = svc.GetByID(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Ответственное лицо имеет доступ к чужому бронированию
	svc = newTestService(repo, &mockIdentityClient{responsible: true}, &mockNotifier{})
	resp, err = svc.GetByID(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}
