package apply_range_prices

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

// StateStore интерфейс хранилища ценовых переопределений
type StateStore interface {
	// DayOverrides получает копию переопределений на дату
	DayOverrides(date domain.DateKey) map[domain.SlotKind]string
	// ApplyOverrideChanges атомарно коммитит замены переопределений по датам
	ApplyOverrideChanges(changes map[domain.DateKey]map[domain.SlotKind]string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
