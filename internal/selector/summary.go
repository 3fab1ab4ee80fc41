package selector

import (
	"fmt"
	"sort"
	"strings"
)

// Summary возвращает человекочитаемое описание выбранных слотов
//
// Один слот: "07:00 - 07:30". Непрерывная цепочка слотов каталога:
// "07:00 to 08:30". Иначе интервалы перечисляются через запятую
func (s *Selector) Summary() string {
	if len(s.selected) == 0 {
		return ""
	}

	indexes := make([]int, 0, len(s.selected))
	for idx := range s.selected {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	first := s.slots[indexes[0]].Slot
	last := s.slots[indexes[len(indexes)-1]].Slot

	if len(indexes) == 1 {
		return fmt.Sprintf("%s - %s", first.StartTime, first.EndTime)
	}

	if isContiguous(indexes) {
		return fmt.Sprintf("%s to %s", first.StartTime, last.EndTime)
	}

	parts := make([]string, len(indexes))
	for i, idx := range indexes {
		slot := s.slots[idx].Slot
		parts[i] = fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime)
	}
	return strings.Join(parts, ", ")
}

// isContiguous возвращает true, если отсортированные индексы идут подряд
func isContiguous(indexes []int) bool {
	for i := 1; i < len(indexes); i++ {
		if indexes[i] != indexes[i-1]+1 {
			return false
		}
	}
	return true
}
