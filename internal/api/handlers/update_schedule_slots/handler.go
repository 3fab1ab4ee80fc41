package update_schedule_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/api/handlers"
	"github.com/ToyotaTanzania/booking-facilities-sub000/internal/service/catalog"
)

const (
	msgInvalidScheduleID  = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание не найдено"
	msgInvalidSlots       = "набор слотов не прошел валидацию"
	msgInvalidSlotTime    = "некорректный формат времени слота, ожидается HH:MM"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedules/{scheduleId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	scheduleIDStr := vars["scheduleId"]

	scheduleID, err := strconv.ParseInt(scheduleIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedules/{id}/slots - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req UpdateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedules/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	input, err := req.ToDomainSlots()
	if err != nil {
		h.logger.Warn("PUT /schedules/{id}/slots - Invalid slot time: schedule_id=%d, error=%v",
			scheduleID, err)
		handlers.RespondBadRequest(w, msgInvalidSlotTime)
		return
	}

	slots, err := h.service.ReplaceSlots(r.Context(), scheduleID, input)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrScheduleNotFound):
			h.logger.Warn("PUT /schedules/{id}/slots - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, catalog.ErrInvalidSlots):
			h.logger.Warn("PUT /schedules/{id}/slots - Invalid slots: schedule_id=%d, error=%v",
				scheduleID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /schedules/{id}/slots - Failed: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedules/{id}/slots - Catalog replaced: schedule_id=%d, slots=%d",
		scheduleID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(scheduleID, slots))
}
