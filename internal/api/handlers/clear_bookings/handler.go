package clear_bookings

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
	toggleBooking "github.com/rakanz/chalet-booking-service/internal/api/handlers/toggle_booking"
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

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

// Handle DELETE /api/v1/dates/{date}/bookings
// Подтверждение оператора — забота UI перед вызовом, не этого обработчика.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
		h.logger.Warn("DELETE /dates/{date}/bookings - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	date := domain.DateKey(dateStr)

	result := h.service.ClearDate(r.Context(), date)

	h.logger.Info("DELETE /dates/{date}/bookings - Cleared: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, toggleBooking.FromServiceModel(result))
}
