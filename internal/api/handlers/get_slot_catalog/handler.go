package get_slot_catalog

import (
	"net/http"

	"github.com/rakanz/chalet-booking-service/internal/api/handlers"
	"github.com/rakanz/chalet-booking-service/internal/service/prices/models"
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

// SlotCatalogResponse HTTP response model
type SlotCatalogResponse struct {
	Slots []CatalogSlot `json:"slots"`
}

// CatalogSlot описание слота без привязки к дате: окно времени и
// заглушечная цена для состояния "дата не выбрана"
type CatalogSlot struct {
	Slot          string `json:"slot"`
	SessionTime   string `json:"sessionTime"`
	FallbackPrice string `json:"fallbackPrice"`
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.SlotCatalog(r.Context())

	response := SlotCatalogResponse{Slots: make([]CatalogSlot, len(catalog))}
	for i, slot := range catalog {
		response.Slots[i] = fromServiceModel(slot)
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}

func fromServiceModel(slot models.CatalogSlot) CatalogSlot {
	return CatalogSlot{
		Slot:          string(slot.Slot),
		SessionTime:   slot.SessionTime,
		FallbackPrice: slot.FallbackPrice,
	}
}
