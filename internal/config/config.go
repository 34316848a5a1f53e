package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ownerPINEnv переменная окружения, перекрывающая PIN из TOML, чтобы секрет
// не жил в закоммиченном конфиге
const ownerPINEnv = "OWNER_PIN"

var (
	// ErrReadConfig возвращается при ошибке чтения/разбора конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при недопустимых значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Auth    AuthConfig    `toml:"auth"`
	Seed    SeedConfig    `toml:"seed"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig общий секрет владельца. Это статический PIN на всю площадку,
// не попользовательская аутентификация.
type AuthConfig struct {
	OwnerPIN string `toml:"owner_pin"`
}

// SeedConfig источник начального состояния
type SeedConfig struct {
	File string `toml:"file"`
}

// Load читает TOML-конфигурацию и применяет переопределения из окружения.
// Файл .env подхватывается, если присутствует.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if pin := os.Getenv(ownerPINEnv); pin != "" {
		cfg.Auth.OwnerPIN = pin
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Auth.OwnerPIN == "" {
		return fmt.Errorf("%w: auth.owner_pin is required (toml or %s)", ErrInvalidConfig, ownerPINEnv)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	return nil
}
