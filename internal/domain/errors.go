package domain

import "errors"

var (
	// ErrInvalidSlotRange возвращается, когда слот имеет start >= end или size < 1
	ErrInvalidSlotRange = errors.New("domain: invalid slot range")

	// ErrSlotsOverlap возвращается, когда два слота одного расписания пересекаются
	ErrSlotsOverlap = errors.New("domain: slots overlap")
)
