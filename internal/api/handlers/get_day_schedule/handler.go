package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
	"github.com/rakanz/chalet-booking-service/internal/domain"
	getDaySchedule "github.com/rakanz/chalet-booking-service/internal/usecase/get_day_schedule"
)

const (
	msgMissingDate = "date is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := domain.DateKey(vars["date"])

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrMissingDate):
			h.logger.Warn("GET /schedule/{date} - Missing date")
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, getDaySchedule.ErrInvalidDate):
			h.logger.Warn("GET /schedule/{date} - Invalid date: %s", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/{date} - Failed to build schedule: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date} - Schedule resolved: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
