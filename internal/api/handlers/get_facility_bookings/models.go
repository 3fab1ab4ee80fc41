package get_facility_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/domain"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/bookings/models"
)

// parseQuery собирает модель сервиса из query-параметров
// Поддерживаются startDate, endDate (YYYY-MM-DD), status и includeInactive
func parseQuery(query url.Values, facilityID, actorID int64) (*models.GetFacilityBookingsRequest, error) {
	req := &models.GetFacilityBookingsRequest{
		ActorID:    actorID,
		FacilityID: facilityID,
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q: %w", startStr, err)
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q: %w", endStr, err)
		}
		req.EndDate = &end
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	return req, nil
}
