package catalog

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInvalidSlots возвращается, когда набор слотов не проходит валидацию
	// (start >= end, size < 1 или пересечение слотов)
	ErrInvalidSlots = errors.New("invalid slot set")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
