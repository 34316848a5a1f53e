package toggle_booking

import (
	"context"

	"github.com/rakanz/chalet-booking-service/internal/domain"
	"github.com/rakanz/chalet-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	ToggleSlot(ctx context.Context, date domain.DateKey, slot domain.SlotKind) (*models.DayBookings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
