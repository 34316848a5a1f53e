package get_slot_catalog

import (
	"context"

	"github.com/rakanz/chalet-booking-service/internal/service/prices/models"
)

type PricesService interface {
	SlotCatalog(ctx context.Context) []models.CatalogSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
