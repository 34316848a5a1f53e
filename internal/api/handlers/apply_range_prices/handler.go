package apply_range_prices

import (
	"errors"
	"net/http"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
	applyRangePrices "github.com/rakanz/chalet-booking-service/internal/usecase/apply_range_prices"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingDates       = "start and end dates are required"
	msgInvertedRange      = "start date must not be after end date"
	msgNoPricesProvided   = "enter at least one price to apply"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase ApplyRangePricesUseCase
	logger  Logger
}

func NewHandler(useCase ApplyRangePricesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplyRangePricesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, applyRangePrices.ErrMissingDates):
			h.logger.Warn("POST /price-ranges - Missing dates")
			handlers.RespondBadRequest(w, msgMissingDates)

		case errors.Is(err, applyRangePrices.ErrInvertedRange):
			h.logger.Warn("POST /price-ranges - Inverted range: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvertedRange)

		case errors.Is(err, applyRangePrices.ErrNoPricesProvided):
			h.logger.Warn("POST /price-ranges - No prices provided")
			handlers.RespondBadRequest(w, msgNoPricesProvided)

		case errors.Is(err, applyRangePrices.ErrInvalidDate):
			h.logger.Warn("POST /price-ranges - Invalid dates: %s..%s", req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /price-ranges - Failed to apply range: %s..%s, error=%v",
				req.StartDate, req.EndDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /price-ranges - Applied: %s..%s, days=%d",
		result.StartDate, result.EndDate, result.DaysProcessed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
