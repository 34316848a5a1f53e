package clear_bookings

import (
	"context"

	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	ClearDate(ctx context.Context, date domain.DateKey) *models.DayBookings
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
