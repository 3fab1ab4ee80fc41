package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotFound возвращается, когда целевой слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrUnauthorized возвращается, когда у актора нет роли, требуемой переходом
	// Проверка выполняется до любой записи в хранилище
	ErrUnauthorized = errors.New("actor is not authorized for this transition")

	// ErrInvalidTransition возвращается при попытке перехода из недопустимого статуса
	ErrInvalidTransition = errors.New("transition is not allowed from the current status")

	// ErrSlotConflict возвращается, когда перенос попадает на занятый слот
	ErrSlotConflict = errors.New("target slot already has an active booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
