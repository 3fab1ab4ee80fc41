package create_booking

import (
	"errors"
	"net/http"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/middleware"
	createBookingUC "github.com/ToyotaTanzania/booking-facilities-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgFacilityNotFound   = "объект не найден"
	msgNoSchedule         = "объекту не назначено расписание"
	msgUserNotFound       = "пользователь не найден"
	msgSlotNotFound       = "слот не найден в расписании объекта"
	msgSlotTaken          = "выбранный слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Гостевые заявки допустимы: userID может быть nil
	userID := middleware.OptionalUserID(r)

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBookingUC.ErrFacilityNotFound):
			h.logger.Warn("POST /bookings - Facility not found: facility_id=%d", req.FacilityID)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, createBookingUC.ErrNoSchedule):
			h.logger.Warn("POST /bookings - No schedule: facility_id=%d", req.FacilityID)
			handlers.RespondBadRequest(w, msgNoSchedule)

		case errors.Is(err, createBookingUC.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found")
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBookingUC.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: %v", err)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, createBookingUC.ErrStaleSelection),
			errors.Is(err, createBookingUC.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot taken: facility_id=%d, error=%v", req.FacilityID, err)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBookingUC.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed: facility_id=%d, error=%v", req.FacilityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Created %d bookings: correlation=%s", len(resp.Bookings), resp.CorrelationCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
