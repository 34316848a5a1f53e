package export_config

import (
	"github.com/rakanz/chalet-booking-service/internal/domain"
)

type StateStore interface {
	Snapshot() domain.AppConfig
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
