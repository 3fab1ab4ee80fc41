package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/pkg/types"
)

// catalog шесть получасовых слотов, третий (индекс 2) занят,
// пятый (индекс 4) отклонен и снова доступен для выбора
func catalog() []domain.SlotAvailability {
	states := []domain.SlotState{
		domain.SlotAvailable,
		domain.SlotAvailable,
		domain.SlotConfirmed,
		domain.SlotAvailable,
		domain.SlotRejected,
		domain.SlotAvailable,
	}

	slots := make([]domain.SlotAvailability, len(states))
	starts := []string{"07:00", "07:30", "08:00", "08:30", "09:00", "09:30"}
	ends := []string{"07:30", "08:00", "08:30", "09:00", "09:30", "10:00"}

	for i, state := range states {
		slots[i] = domain.SlotAvailability{
			Slot: domain.Slot{
				ID:        int64(i + 1),
				StartTime: types.TimeString(starts[i]),
				EndTime:   types.TimeString(ends[i]),
				Size:      1,
			},
			State: state,
		}
	}
	return slots
}

func TestSelector_ClickToggles(t *testing.T) {
	s := New(catalog())

	s.Click(0)
	assert.Equal(t, []int64{1}, s.Selection())

	s.Click(0)
	assert.Empty(t, s.Selection())
}

func TestSelector_ClickOnBookedIsNoop(t *testing.T) {
	s := New(catalog())

	s.Click(2)
	assert.Empty(t, s.Selection())
}

func TestSelector_ClickOnRejectedSelects(t *testing.T) {
	s := New(catalog())

	s.Click(4)
	assert.Equal(t, []int64{5}, s.Selection())
}

func TestSelector_RangeAddsSkippingBooked(t *testing.T) {
	s := New(catalog())

	s.ShiftClick(0)
	s.Click(5)

	// Занятый слот 3 исключен из диапазона
	assert.Equal(t, []int64{1, 2, 4, 5, 6}, s.Selection())
}

func TestSelector_RangeReversedAnchor(t *testing.T) {
	s := New(catalog())

	s.ShiftClick(5)
	s.Click(0)

	assert.Equal(t, []int64{1, 2, 4, 5, 6}, s.Selection())
}

func TestSelector_RangeIdempotence(t *testing.T) {
	// Повторный диапазонный жест на полностью выбранном диапазоне
	// снимает ровно эти слоты
	s := New(catalog())

	s.ShiftClick(0)
	s.Click(3)
	require.Equal(t, []int64{1, 2, 4}, s.Selection())

	s.ShiftClick(0)
	s.Click(3)
	assert.Empty(t, s.Selection())
}

func TestSelector_AnchorSelectedRemovesRange(t *testing.T) {
	s := New(catalog())

	s.Click(0)
	s.Click(1)
	require.Equal(t, []int64{1, 2}, s.Selection())

	// Якорь выбран, поэтому диапазон снимает выбор
	s.ShiftClick(0)
	s.Click(3)
	assert.Empty(t, s.Selection())
}

func TestSelector_ClickOnAnchorTogglesSingle(t *testing.T) {
	s := New(catalog())

	s.ShiftClick(1)
	s.Click(1)
	assert.Equal(t, []int64{2}, s.Selection())

	// Автомат вернулся в idle: следующий клик снова одиночный
	s.Click(3)
	assert.Equal(t, []int64{2, 4}, s.Selection())
}

func TestSelector_LeaveAbortsRange(t *testing.T) {
	s := New(catalog())

	s.Click(0)
	s.ShiftClick(1)
	s.Leave()

	// Отмена диапазона не меняет выбор, автомат снова в idle
	assert.Equal(t, []int64{1}, s.Selection())

	s.Click(3)
	assert.Equal(t, []int64{1, 4}, s.Selection())
}

func TestSelector_HoverPreviewDoesNotMutate(t *testing.T) {
	s := New(catalog())

	s.ShiftClick(0)
	s.Hover(4)

	lo, hi, ok := s.Preview()
	require.True(t, ok)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 4, hi)
	assert.Empty(t, s.Selection())

	// Вне режима диапазона предпросмотра нет
	s.Leave()
	_, _, ok = s.Preview()
	assert.False(t, ok)
}

func TestSelector_BookedSlotNeverEntersSelection(t *testing.T) {
	s := New(catalog())

	// Никакая последовательность жестов не выбирает занятый слот
	s.Click(2)
	s.ShiftClick(2)
	s.ShiftClick(0)
	s.Hover(2)
	s.Click(5)
	s.ShiftClick(1)
	s.Click(3)

	for _, id := range s.Selection() {
		assert.NotEqual(t, int64(3), id)
	}
}

func TestSelector_ShiftClickOnBookedIsNoop(t *testing.T) {
	s := New(catalog())

	s.ShiftClick(2)
	s.Click(0)

	// Диапазон не открылся, клик сработал как одиночный
	assert.Equal(t, []int64{1}, s.Selection())
}
