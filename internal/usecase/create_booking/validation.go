package create_booking

import (
	"fmt"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.SlotIDs) == 0 {
		return fmt.Errorf("%w: at least one slot must be selected", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.SlotIDs))
	for _, slotID := range req.SlotIDs {
		if slotID <= 0 {
			return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[slotID]; ok {
			return fmt.Errorf("%w: duplicate slotID=%d in selection", ErrInvalidInput, slotID)
		}
		seen[slotID] = struct{}{}
	}

	// Без пользователя нужен контакт, иначе заявку не с кем связать
	if req.UserID == nil && (req.Contact == nil || *req.Contact == "") {
		return fmt.Errorf("%w: contact is required for bookings without a user", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}
