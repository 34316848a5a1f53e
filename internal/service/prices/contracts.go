package prices

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// StateStore интерфейс хранилища ценовых переопределений
type StateStore interface {
	Override(date domain.DateKey, slot domain.SlotKind) (string, bool)
	DayOverrides(date domain.DateKey) map[domain.SlotKind]string
	ReplaceDayOverrides(date domain.DateKey, prices map[domain.SlotKind]string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
