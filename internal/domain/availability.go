package domain

// SlotState resolved state of a slot for a facility on a specific date
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotPending   SlotState = "pending"
	SlotConfirmed SlotState = "confirmed"
	SlotRejected  SlotState = "rejected"
)

// SlotAvailability is a slot of the catalog annotated with its resolved state
type SlotAvailability struct {
	Slot  Slot
	State SlotState

	// OccupiedBy is the user holding the active booking, nil for guest
	// bookings and for slots without an active booking
	OccupiedBy *int64
}

// IsSelectable returns true if a new booking request may target this slot
// Rejected bookings do not block re-booking, so a rejected slot is selectable
func (a SlotAvailability) IsSelectable() bool {
	return a.State == SlotAvailable || a.State == SlotRejected
}

// statePriority порядок разрешения состояния при нескольких бронированиях
// на один слот: confirmed > pending > rejected > available
var statePriority = map[SlotState]int{
	SlotConfirmed: 3,
	SlotPending:   2,
	SlotRejected:  1,
	SlotAvailable: 0,
}

// StrongerState returns the higher-priority of two slot states
func StrongerState(a, b SlotState) SlotState {
	if statePriority[a] >= statePriority[b] {
		return a
	}
	return b
}
