package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gooffice/GoOffice-ShiftService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Calendar CalendarConfig `toml:"calendar"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// CalendarConfig настройки календарного окна и вместимости смен.
// Вместимость задается только здесь, пользователи её не меняют.
type CalendarConfig struct {
	WindowDays        int `toml:"window_days"`
	MorningCapacity   int `toml:"morning_capacity"`
	AfternoonCapacity int `toml:"afternoon_capacity"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Calendar: CalendarConfig{
			WindowDays:        domain.DefaultWindowDays,
			MorningCapacity:   domain.DefaultShiftCapacity,
			AfternoonCapacity: domain.DefaultShiftCapacity,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "shift-service",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port: %d", c.Server.HTTPPort)
	}
	if c.Calendar.WindowDays < domain.MinWindowDays || c.Calendar.WindowDays > domain.MaxWindowDays {
		return fmt.Errorf("window_days must be between %d and %d", domain.MinWindowDays, domain.MaxWindowDays)
	}
	for name, capacity := range map[string]int{
		"morning_capacity":   c.Calendar.MorningCapacity,
		"afternoon_capacity": c.Calendar.AfternoonCapacity,
	} {
		if capacity < domain.MinShiftCapacity || capacity > domain.MaxShiftCapacity {
			return fmt.Errorf("%s must be between %d and %d", name, domain.MinShiftCapacity, domain.MaxShiftCapacity)
		}
	}
	return nil
}
