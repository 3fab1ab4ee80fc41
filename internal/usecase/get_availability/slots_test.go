package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/ptr"
)

func testSlots() []*domain.Slot {
	return []*domain.Slot{
		{ID: 1, ScheduleID: 10, StartTime: "07:00", EndTime: "07:30", Size: 2},
		{ID: 2, ScheduleID: 10, StartTime: "07:30", EndTime: "08:00", Size: 2},
		{ID: 3, ScheduleID: 10, StartTime: "08:00", EndTime: "08:30", Size: 1},
	}
}

func TestResolveSlotStates_AllAvailable(t *testing.T) {
	result := resolveSlotStates(testSlots(), nil)

	require.Len(t, result, 3)
	for _, a := range result {
		assert.Equal(t, domain.SlotAvailable, a.State)
		assert.Nil(t, a.OccupiedBy)
	}
}

func TestResolveSlotStates_PendingAndConfirmed(t *testing.T) {
	bookings := []*domain.Booking{
		{SlotID: 1, Status: domain.StatusPending, UserID: ptr.Ptr(int64(100))},
		{SlotID: 2, Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(200))},
	}

	result := resolveSlotStates(testSlots(), bookings)

	require.Len(t, result, 3)
	assert.Equal(t, domain.SlotPending, result[0].State)
	require.NotNil(t, result[0].OccupiedBy)
	assert.Equal(t, int64(100), *result[0].OccupiedBy)

	assert.Equal(t, domain.SlotConfirmed, result[1].State)
	require.NotNil(t, result[1].OccupiedBy)
	assert.Equal(t, int64(200), *result[1].OccupiedBy)

	assert.Equal(t, domain.SlotAvailable, result[2].State)
}

func TestResolveSlotStates_RejectedKeepsSlotSelectable(t *testing.T) {
	bookings := []*domain.Booking{
		{SlotID: 1, Status: domain.StatusRejected, UserID: ptr.Ptr(int64(100))},
	}

	result := resolveSlotStates(testSlots(), bookings)

	assert.Equal(t, domain.SlotRejected, result[0].State)
	// Отклоненное бронирование не занимает слот
	assert.Nil(t, result[0].OccupiedBy)
	assert.True(t, result[0].IsSelectable())
}

func TestResolveSlotStates_CancelledIgnored(t *testing.T) {
	bookings := []*domain.Booking{
		{SlotID: 1, Status: domain.StatusCancelled, UserID: ptr.Ptr(int64(100))},
	}

	result := resolveSlotStates(testSlots(), bookings)

	assert.Equal(t, domain.SlotAvailable, result[0].State)
	assert.Nil(t, result[0].OccupiedBy)
}

func TestResolveSlotStates_DuplicatesPickStrongerState(t *testing.T) {
	// Инвариант допускает максимум одно активное бронирование,
	// но дубликаты разрешаются выбором старшего состояния, а не ошибкой
	bookings := []*domain.Booking{
		{SlotID: 1, Status: domain.StatusRejected, UserID: ptr.Ptr(int64(100))},
		{SlotID: 1, Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(200))},
		{SlotID: 1, Status: domain.StatusPending, UserID: ptr.Ptr(int64(300))},
	}

	result := resolveSlotStates(testSlots(), bookings)

	assert.Equal(t, domain.SlotConfirmed, result[0].State)
	require.NotNil(t, result[0].OccupiedBy)
	assert.Equal(t, int64(200), *result[0].OccupiedBy)
}

func TestResolveSlotStates_BookingsForOtherSlotsIgnored(t *testing.T) {
	bookings := []*domain.Booking{
		{SlotID: 99, Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(100))},
	}

	result := resolveSlotStates(testSlots(), bookings)

	for _, a := range result {
		assert.Equal(t, domain.SlotAvailable, a.State)
	}
}

func TestResolveSlotStates_HistoryOnReplacedCatalog(t *testing.T) {
	// После полной замены каталога история ссылается на архивные слоты,
	// которых нет в живой выдаче; новый каталог остается полностью доступным
	bookings := []*domain.Booking{
		{SlotID: 50, Status: domain.StatusConfirmed, UserID: ptr.Ptr(int64(100))},
		{SlotID: 51, Status: domain.StatusCancelled, UserID: ptr.Ptr(int64(101))},
		{SlotID: 52, Status: domain.StatusRejected, UserID: ptr.Ptr(int64(102))},
	}

	result := resolveSlotStates(testSlots(), bookings)

	require.Len(t, result, 3)
	for _, a := range result {
		assert.Equal(t, domain.SlotAvailable, a.State)
		assert.Nil(t, a.OccupiedBy)
	}
}
