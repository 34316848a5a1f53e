package toggle_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/service/bookings"
)

const (
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequestBody = "invalid request body"
	msgUnknownSlot        = "unknown slot, expected morning, evening or full_day"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/dates/{date}/bookings/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	// Граница ввода дат: дальше движка уходят только канонические YYYY-MM-DD
	if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
		h.logger.Warn("POST /dates/{date}/bookings/toggle - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	date := domain.DateKey(dateStr)

	var req ToggleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dates/{date}/bookings/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := domain.ParseSlotKind(req.Slot)
	if err != nil {
		h.logger.Warn("POST /dates/{date}/bookings/toggle - Unknown slot: %q", req.Slot)
		handlers.RespondBadRequest(w, msgUnknownSlot)
		return
	}

	result, err := h.service.ToggleSlot(r.Context(), date, slot)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUnknownSlot):
			handlers.RespondBadRequest(w, msgUnknownSlot)

		default:
			h.logger.Error("POST /dates/{date}/bookings/toggle - Failed to toggle: date=%s, slot=%s, error=%v",
				date, slot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dates/{date}/bookings/toggle - Toggled: date=%s, slot=%s", date, slot)
	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(result))
}
