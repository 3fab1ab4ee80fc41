package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	bookingRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/booking"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/facilityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/integrations/identityservice"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/notify"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/ptr"
)

// Моки зависимостей usecase

type mockBookingRepo struct {
	existing  []*domain.Booking
	createErr error

	createCalled bool
	created      []*domain.Booking
}

func (m *mockBookingRepo) CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	m.createCalled = true
	if m.createErr != nil {
		return nil, m.createErr
	}
	for i, b := range bookings {
		b.ID = int64(i + 100)
	}
	m.created = bookings
	return bookings, nil
}

func (m *mockBookingRepo) GetByFacilityWithFilter(ctx context.Context, filter domain.FacilityBookingsFilter) ([]*domain.Booking, error) {
	return m.existing, nil
}

type mockScheduleRepo struct {
	slots []*domain.Slot
}

func (m *mockScheduleRepo) ListSlots(ctx context.Context, scheduleID int64) ([]*domain.Slot, error) {
	return m.slots, nil
}

type mockFacilityClient struct {
	facility *facilityservice.Facility
	err      error
}

func (m *mockFacilityClient) GetFacility(ctx context.Context, facilityID int64) (*facilityservice.Facility, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.facility, nil
}

type mockIdentityClient struct {
	user *identityservice.User
	err  error
}

func (m *mockIdentityClient) GetUser(ctx context.Context, userID int64) (*identityservice.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

type mockNotifier struct {
	events []notify.BookingEvent
	err    error
}

func (m *mockNotifier) PublishBookingCreated(ctx context.Context, event notify.BookingEvent) error {
	m.events = append(m.events, event)
	return m.err
}

type mockTxManager struct {
	called bool
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.called = true
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testFacility() *facilityservice.Facility {
	return &facilityservice.Facility{
		ID:                  10,
		Name:                "Переговорная А",
		BuildingID:          1,
		Capacity:            8,
		ScheduleID:          ptr.Ptr(int64(5)),
		ResponsiblePersonID: ptr.Ptr(int64(99)),
	}
}

func testSlots() []*domain.Slot {
	return []*domain.Slot{
		{ID: 1, ScheduleID: 5, StartTime: "07:00", EndTime: "07:30", Size: 2},
		{ID: 2, ScheduleID: 5, StartTime: "07:30", EndTime: "08:00", Size: 2},
		{ID: 3, ScheduleID: 5, StartTime: "08:00", EndTime: "08:30", Size: 1},
	}
}

func newTestUseCase(repo *mockBookingRepo, identity *mockIdentityClient, notifier *mockNotifier, tx *mockTxManager) *UseCase {
	return NewUseCase(
		repo,
		&mockScheduleRepo{slots: testSlots()},
		&mockFacilityClient{facility: testFacility()},
		identity,
		notifier,
		tx,
		nopLogger{},
	)
}

func guestRequest(slotIDs ...int64) *Request {
	return &Request{
		FacilityID: 10,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		SlotIDs:    slotIDs,
		Contact:    ptr.Ptr("guest@example.com"),
	}
}

func TestExecute_MultiSlotSharesCorrelationCode(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &mockNotifier{}
	tx := &mockTxManager{}
	uc := newTestUseCase(repo, &mockIdentityClient{}, notifier, tx)

	resp, err := uc.Execute(context.Background(), guestRequest(1, 2))
	require.NoError(t, err)

	assert.True(t, tx.called)
	require.Len(t, resp.Bookings, 2)
	assert.NotEmpty(t, resp.CorrelationCode)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Все бронирования пакета делят один correlation code
	for _, b := range repo.created {
		assert.Equal(t, resp.CorrelationCode, b.CorrelationCode)
		assert.Equal(t, domain.StatusPending, b.Status)
	}

	// Уведомление содержит диапазон от начала первого до конца последнего слота
	require.Len(t, notifier.events, 1)
	assert.Equal(t, "07:00", notifier.events[0].StartTime)
	assert.Equal(t, "08:00", notifier.events[0].EndTime)
	assert.Equal(t, resp.CorrelationCode, notifier.events[0].CorrelationCode)
}

func TestExecute_DescriptionDefaultsToContact(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, &mockIdentityClient{}, &mockNotifier{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), guestRequest(1))
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].Description)
	assert.Equal(t, "guest@example.com", *repo.created[0].Description)
}

func TestExecute_RegisteredUserContactFromProfile(t *testing.T) {
	repo := &mockBookingRepo{}
	identity := &mockIdentityClient{
		user: &identityservice.User{
			ID:    42,
			Name:  "Иван Иванов",
			Email: ptr.Ptr("ivan@example.com"),
		},
	}
	uc := newTestUseCase(repo, identity, &mockNotifier{}, &mockTxManager{})

	req := &Request{
		FacilityID: 10,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		SlotIDs:    []int64{1},
		UserID:     ptr.Ptr(int64(42)),
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "ivan@example.com", repo.created[0].RequesterContact)
	require.NotNil(t, repo.created[0].UserID)
	assert.Equal(t, int64(42), *repo.created[0].UserID)
}

func TestExecute_StaleSelection(t *testing.T) {
	// Слот 2 уже занят активным бронированием: весь пакет отвергается
	repo := &mockBookingRepo{
		existing: []*domain.Booking{
			{SlotID: 2, Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(repo, &mockIdentityClient{}, &mockNotifier{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), guestRequest(1, 2))
	assert.ErrorIs(t, err, ErrStaleSelection)
	assert.False(t, repo.createCalled)
}

func TestExecute_SlotNotInSchedule(t *testing.T) {
	repo := &mockBookingRepo{}
	uc := newTestUseCase(repo, &mockIdentityClient{}, &mockNotifier{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), guestRequest(1, 99))
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.False(t, repo.createCalled)
}

func TestExecute_FacilityWithoutSchedule(t *testing.T) {
	facility := testFacility()
	facility.ScheduleID = nil
	uc := NewUseCase(
		&mockBookingRepo{},
		&mockScheduleRepo{slots: testSlots()},
		&mockFacilityClient{facility: facility},
		&mockIdentityClient{},
		&mockNotifier{},
		&mockTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), guestRequest(1))
	assert.ErrorIs(t, err, ErrNoSchedule)
}

func TestExecute_FacilityNotFound(t *testing.T) {
	uc := NewUseCase(
		&mockBookingRepo{},
		&mockScheduleRepo{slots: testSlots()},
		&mockFacilityClient{err: facilityservice.ErrFacilityNotFound},
		&mockIdentityClient{},
		&mockNotifier{},
		&mockTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), guestRequest(1))
	assert.ErrorIs(t, err, ErrFacilityNotFound)
}

func TestExecute_GuestWithoutContact(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockIdentityClient{}, &mockNotifier{}, &mockTxManager{})

	req := &Request{
		FacilityID: 10,
		Date:       time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		SlotIDs:    []int64{1},
	}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DuplicateSlotIDs(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockIdentityClient{}, &mockNotifier{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), guestRequest(1, 1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageConflictWinsRace(t *testing.T) {
	// Проигравшая вставка при гонке получает нарушение уникального индекса
	repo := &mockBookingRepo{createErr: bookingRepo.ErrSlotConflict}
	uc := newTestUseCase(repo, &mockIdentityClient{}, &mockNotifier{}, &mockTxManager{})

	_, err := uc.Execute(context.Background(), guestRequest(1))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_RebookAfterRejection(t *testing.T) {
	// Отклоненное бронирование не блокирует повторное бронирование слота
	repo := &mockBookingRepo{
		existing: []*domain.Booking{
			{SlotID: 1, Status: domain.StatusRejected},
		},
	}
	uc := newTestUseCase(repo, &mockIdentityClient{}, &mockNotifier{}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), guestRequest(1))
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestExecute_NotifierFailureIsNonFatal(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &mockNotifier{err: assert.AnError}
	uc := newTestUseCase(repo, &mockIdentityClient{}, notifier, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), guestRequest(1))
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}
