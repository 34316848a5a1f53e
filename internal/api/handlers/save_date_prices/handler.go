package save_date_prices

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

const (
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service PricesService
	logger  Logger
}

func NewHandler(service PricesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/dates/{date}/prices
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]

	if _, err := time.Parse(domain.DateFormat, dateStr); err != nil {
		h.logger.Warn("PUT /dates/{date}/prices - Invalid date: %s", dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	date := domain.DateKey(dateStr)

	var req SaveDatePricesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /dates/{date}/prices - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.service.SaveDayPrices(r.Context(), date, req.ToProposedPrices())

	h.logger.Info("PUT /dates/{date}/prices - Prices saved: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, FromServiceModel(result))
}
