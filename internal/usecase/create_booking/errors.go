package create_booking

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrNoSchedule возвращается, когда объекту не назначено расписание
	ErrNoSchedule = errors.New("facility has no schedule")

	// ErrUserNotFound возвращается, когда указанный пользователь не существует
	ErrUserNotFound = errors.New("user not found")

	// ErrSlotNotFound возвращается, когда выбранный слот отсутствует в расписании
	ErrSlotNotFound = errors.New("slot not found in schedule")

	// ErrStaleSelection возвращается, когда выбранный слот уже занят
	// активным бронированием на момент отправки заявки
	ErrStaleSelection = errors.New("selection is stale: slot already booked")

	// ErrSlotConflict возвращается при гонке двух одновременных заявок на один слот
	ErrSlotConflict = errors.New("slot booking conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
