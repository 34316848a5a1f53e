package bookings

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// StateStore интерфейс хранилища состояния бронирований
type StateStore interface {
	BookedSlots(date domain.DateKey) []domain.SlotKind
	SetBookedSlots(date domain.DateKey, slots []domain.SlotKind)
	DeleteBookings(date domain.DateKey)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
