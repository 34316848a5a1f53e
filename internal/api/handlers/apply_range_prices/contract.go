package apply_range_prices

import (
	"context"

	applyRangePrices "github.com/rakanz/chalet-booking-service/internal/usecase/apply_range_prices"
)

type ApplyRangePricesUseCase interface {
	Execute(ctx context.Context, req *applyRangePrices.Request) (*applyRangePrices.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
