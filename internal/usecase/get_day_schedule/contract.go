package get_day_schedule

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// StateStore интерфейс чтения состояния для построения расписания дня
type StateStore interface {
	BookedSlots(date domain.DateKey) []domain.SlotKind
	Override(date domain.DateKey, slot domain.SlotKind) (string, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
