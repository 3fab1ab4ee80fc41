package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	scheduleRepo "github.com/ToyotaTanzania/booking-facilities-sub000/internal/infra/storage/schedule"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

type mockScheduleRepo struct {
	schedule *domain.Schedule
	getErr   error

	slots   []*domain.Slot
	listErr error

	replaceCalled bool
	replaced      []domain.SlotInput
	replaceErr    error
}

func (m *mockScheduleRepo) GetSchedule(ctx context.Context, id int64) (*domain.Schedule, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.schedule, nil
}

func (m *mockScheduleRepo) ListSlots(ctx context.Context, scheduleID int64) ([]*domain.Slot, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.slots, nil
}

func (m *mockScheduleRepo) ReplaceSlots(ctx context.Context, scheduleID int64, slots []domain.SlotInput) ([]*domain.Slot, error) {
	m.replaceCalled = true
	m.replaced = slots
	if m.replaceErr != nil {
		return nil, m.replaceErr
	}

	result := make([]*domain.Slot, len(slots))
	for i, s := range slots {
		result[i] = &domain.Slot{
			ID:         int64(i + 1),
			ScheduleID: scheduleID,
			StartTime:  s.StartTime,
			EndTime:    s.EndTime,
			Size:       s.Size,
		}
	}
	return result, nil
}

// mockTxManager исполняет функцию без настоящей транзакции
type mockTxManager struct {
	called bool
}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.called = true
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validSlotInputs() []domain.SlotInput {
	return []domain.SlotInput{
		{StartTime: types.TimeString("07:00"), EndTime: types.TimeString("07:30"), Size: 2},
		{StartTime: types.TimeString("07:30"), EndTime: types.TimeString("08:00"), Size: 2},
	}
}

func TestListSlots_OK(t *testing.T) {
	repo := &mockScheduleRepo{
		schedule: &domain.Schedule{ID: 1, Name: "Будние дни"},
		slots: []*domain.Slot{
			{ID: 1, ScheduleID: 1, StartTime: "07:00", EndTime: "07:30", Size: 2},
		},
	}
	svc := NewService(repo, &mockTxManager{}, nopLogger{})

	slots, err := svc.ListSlots(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

func TestListSlots_ScheduleNotFound(t *testing.T) {
	repo := &mockScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}
	svc := NewService(repo, &mockTxManager{}, nopLogger{})

	_, err := svc.ListSlots(context.Background(), 404)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestReplaceSlots_OK(t *testing.T) {
	repo := &mockScheduleRepo{schedule: &domain.Schedule{ID: 1}}
	tx := &mockTxManager{}
	svc := NewService(repo, tx, nopLogger{})

	created, err := svc.ReplaceSlots(context.Background(), 1, validSlotInputs())
	require.NoError(t, err)

	assert.True(t, tx.called)
	assert.True(t, repo.replaceCalled)
	assert.Len(t, created, 2)
}

func TestReplaceSlots_ValidationBeforeAnyWrite(t *testing.T) {
	repo := &mockScheduleRepo{schedule: &domain.Schedule{ID: 1}}
	tx := &mockTxManager{}
	svc := NewService(repo, tx, nopLogger{})

	overlapping := []domain.SlotInput{
		{StartTime: types.TimeString("07:00"), EndTime: types.TimeString("08:00"), Size: 1},
		{StartTime: types.TimeString("07:30"), EndTime: types.TimeString("09:00"), Size: 1},
	}

	_, err := svc.ReplaceSlots(context.Background(), 1, overlapping)
	assert.ErrorIs(t, err, ErrInvalidSlots)

	// Невалидный набор не доходит ни до транзакции, ни до репозитория
	assert.False(t, tx.called)
	assert.False(t, repo.replaceCalled)
}

func TestReplaceSlots_ScheduleNotFound(t *testing.T) {
	repo := &mockScheduleRepo{replaceErr: scheduleRepo.ErrScheduleNotFound}
	svc := NewService(repo, &mockTxManager{}, nopLogger{})

	_, err := svc.ReplaceSlots(context.Background(), 404, validSlotInputs())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
