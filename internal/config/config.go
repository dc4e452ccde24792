package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hoteleiro/HFD-ReservationService/internal/domain"
)

// Config is the full service configuration loaded from a TOML file.
type Config struct {
	Server        ServerConfig      `toml:"server"`
	Database      DatabaseConfig    `toml:"database"`
	Logs          LogsConfig        `toml:"logs"`
	Metrics       MetricsConfig     `toml:"metrics"`
	GuestRegistry IntegrationConfig `toml:"guest_registry"`
	CnpjLookup    IntegrationConfig `toml:"cnpj_lookup"`
	Board         BoardConfig       `toml:"board"`
}

// ServerConfig holds HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig holds logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig holds settings for an outbound HTTP client.
// Timeout is in seconds.
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BoardConfig holds the reservation board geometry and policies.
// Pixel sizes must match the front-end cell sizes exactly, otherwise
// pointer coordinates resolve to the wrong cells.
type BoardConfig struct {
	LabelWidth       int     `toml:"label_width"`
	DayWidth         int     `toml:"day_width"`
	RowHeight        int     `toml:"row_height"`
	BandHeight       int     `toml:"band_height"`
	WindowDays       int     `toml:"window_days"`
	NightlyRate      float64 `toml:"nightly_rate"`
	AllowOverbooking bool    `toml:"allow_overbooking"`
	HoldTTLSeconds   int     `toml:"hold_ttl_seconds"`
}

// Layout converts the board settings into a domain layout, filling unset
// values with the defaults.
func (b BoardConfig) Layout() domain.Layout {
	layout := domain.DefaultLayout()
	if b.LabelWidth > 0 {
		layout.LabelWidth = b.LabelWidth
	}
	if b.DayWidth > 0 {
		layout.DayWidth = b.DayWidth
	}
	if b.RowHeight > 0 {
		layout.RowHeight = b.RowHeight
	}
	if b.BandHeight > 0 {
		layout.BandHeight = b.BandHeight
	}
	if b.WindowDays > 0 {
		layout.WindowDays = b.WindowDays
	}
	return layout
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Board.NightlyRate == 0 {
		cfg.Board.NightlyRate = domain.DefaultNightlyRate
	}
	if cfg.Board.HoldTTLSeconds == 0 {
		cfg.Board.HoldTTLSeconds = 300
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	return &cfg, nil
}
