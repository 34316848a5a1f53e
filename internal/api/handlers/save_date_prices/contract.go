package save_date_prices

import (
	"context"

	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/service/prices/models"
)

type PricesService interface {
	SaveDayPrices(ctx context.Context, date domain.DateKey, proposed map[domain.SlotKind]string) *models.DayPrices
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
