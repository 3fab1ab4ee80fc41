package domain

// Business validation constants
const (
	MinSlotSize          = 1
	MaxDescriptionLength = 500
	MaxCommentLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование блокирует слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы, при которых слот снова доступен для бронирования
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
}

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusRejected,
	StatusCancelled,
}

// IsValidStatus returns true if s is one of the four booking statuses
func IsValidStatus(s BookingStatus) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}
