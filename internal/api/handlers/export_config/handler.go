package export_config

import (
	"net/http"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
)

type Handler struct {
	store  StateStore
	logger Logger
}

func NewHandler(store StateStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/config/export
//
// Отдает снимок всего состояния в форме seed-файла, чтобы оператор мог
// скопировать его и вручную слить обратно в конфигурацию. Машинного
// импорта намеренно нет — это граница охвата системы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshot := h.store.Snapshot()

	h.logger.Info("GET /config/export - Exported: dates_booked=%d, dates_priced=%d",
		len(snapshot.BookedSlots), len(snapshot.CustomPrices))
	handlers.RespondJSON(w, http.StatusOK, snapshot)
}
