// Package selector реализует состояние выбора слотов: одиночное переключение
// кликом и выбор непрерывного диапазона через shift-click с предпросмотром.
// Состояние живет в памяти одного сеанса выбора и не разделяется между запросами.
package selector

import (
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
)

// state состояние конечного автомата выбора
type state int

const (
	stateIdle state = iota
	stateRangePending
)

// Selector конечный автомат выбора слотов поверх разрешенной доступности
//
// Слоты с активным бронированием инертны: клики по ним игнорируются,
// и диапазон никогда их не включает. Слоты в состоянии rejected
// считаются доступными для выбора
type Selector struct {
	slots    []domain.SlotAvailability
	selected map[int]struct{} // индексы выбранных слотов
	state    state
	anchor   int // индекс якоря в state == stateRangePending
	hover    int // индекс наведения для предпросмотра, -1 если нет
}

// New создает селектор поверх слотов в хронологическом порядке
func New(slots []domain.SlotAvailability) *Selector {
	return &Selector{
		slots:    slots,
		selected: make(map[int]struct{}),
		state:    stateIdle,
		hover:    -1,
	}
}

// Click обрабатывает клик по слоту с индексом i
func (s *Selector) Click(i int) {
	if !s.selectable(i) {
		return
	}

	if s.state == stateIdle {
		s.toggle(i)
		return
	}

	// Завершение диапазона. Клик по самому якорю равен одиночному клику
	anchor := s.anchor
	s.reset()

	if i == anchor {
		s.toggle(i)
		return
	}

	lo, hi := anchor, i
	if lo > hi {
		lo, hi = hi, lo
	}

	// Если якорь был выбран до клика, диапазон снимает выбор, иначе добавляет
	_, anchorSelected := s.selected[anchor]

	for idx := lo; idx <= hi; idx++ {
		if !s.selectable(idx) {
			continue
		}
		if anchorSelected {
			delete(s.selected, idx)
		} else {
			s.selected[idx] = struct{}{}
		}
	}
}

// ShiftClick обрабатывает shift-клик по слоту с индексом i
// В idle ставит якорь диапазона; при открытом диапазоне завершает его
func (s *Selector) ShiftClick(i int) {
	if !s.selectable(i) {
		return
	}

	if s.state == stateRangePending {
		s.Click(i)
		return
	}

	s.state = stateRangePending
	s.anchor = i
	s.hover = -1
}

// Hover отмечает наведение на слот с индексом j
// Влияет только на предпросмотр диапазона, выбор не меняется
func (s *Selector) Hover(j int) {
	if s.state != stateRangePending {
		return
	}
	if j < 0 || j >= len(s.slots) {
		return
	}
	s.hover = j
}

// Leave прерывает выбор диапазона без изменения выбранных слотов
func (s *Selector) Leave() {
	s.reset()
}

// Preview возвращает границы подсвечиваемого диапазона [lo, hi]
// Второе значение false, если диапазон не строится
func (s *Selector) Preview() (int, int, bool) {
	if s.state != stateRangePending || s.hover < 0 {
		return 0, 0, false
	}

	lo, hi := s.anchor, s.hover
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, true
}

// IsSelected возвращает true, если слот с индексом i выбран
func (s *Selector) IsSelected(i int) bool {
	_, ok := s.selected[i]
	return ok
}

// Selection возвращает ID выбранных слотов в хронологическом порядке
func (s *Selector) Selection() []int64 {
	ids := make([]int64, 0, len(s.selected))
	for idx := range s.slots {
		if _, ok := s.selected[idx]; ok {
			ids = append(ids, s.slots[idx].Slot.ID)
		}
	}
	return ids
}

// selectable возвращает true, если слот существует и доступен для выбора
func (s *Selector) selectable(i int) bool {
	if i < 0 || i >= len(s.slots) {
		return false
	}
	return s.slots[i].IsSelectable()
}

// toggle переключает членство слота в выбранном наборе
func (s *Selector) toggle(i int) {
	if _, ok := s.selected[i]; ok {
		delete(s.selected, i)
	} else {
		s.selected[i] = struct{}{}
	}
}

// reset возвращает автомат в idle, сбрасывая якорь и предпросмотр
func (s *Selector) reset() {
	s.state = stateIdle
	s.hover = -1
}
