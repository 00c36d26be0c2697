package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"kamakpos/m/internal/core"
	"kamakpos/m/pkg/logx"
	pkgredis "kamakpos/m/pkg/redis"
)

const (
	BackendSQL   = "sql"
	BackendRedis = "redis"
)

// ERP points the terminal at the remote ERP REST API. Every request carries
// the same Basic credential.
type ERP struct {
	BaseURL           string        `split_words:"true" required:"true"`
	BasicAuthUsername string        `split_words:"true"`
	BasicAuthPassword string        `split_words:"true"`
	Timeout           time.Duration `default:"30s"`
}

// DeviceStore selects where device-local session state is kept.
type DeviceStore struct {
	Backend string `default:"sql"`
	Driver  string `default:"sqlite"`
	DSN     string `default:"file:pos.db?cache=shared"`
}

// Company is printed in the receipt header.
type Company struct {
	Name      string `default:"Kamak POS"`
	Address   string
	Telephone string
	Email     string
}

// Config holds application configuration values.
type Config struct {
	Environment string        `default:"development"`
	HTTPPort    string        `envconfig:"HTTP_PORT" default:"8080"`
	Secret      string        `default:"dev_secret"`
	SessionTTL  time.Duration `split_words:"true" default:"12h"`
	// TaxRate is a percentage applied after the order discount.
	TaxRate        float64 `split_words:"true" default:"0"`
	ChromePath     string  `split_words:"true"`
	SupportSeedCSV string  `envconfig:"SUPPORT_SEED_CSV" default:"assets/support_tickets.csv"`

	ERP         ERP
	DeviceStore DeviceStore `split_words:"true"`
	Redis       pkgredis.Config
	Company     Company
}

// Env returns the parsed deployment environment.
func (c Config) Env() core.Environment {
	return core.ParseEnvironment(c.Environment)
}

// Load reads configuration from environment variables with reasonable defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}

	// Validate that port is numeric.
	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		logx.Warn().Str("value", cfg.HTTPPort).Msg("invalid HTTP_PORT, defaulting to 8080")
		cfg.HTTPPort = "8080"
	}

	cfg.ERP.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.ERP.BaseURL), "/")
	if cfg.ERP.BaseURL == "" {
		return Config{}, fmt.Errorf("ERP_BASE_URL is required")
	}
	cfg.DeviceStore.Backend = strings.ToLower(cfg.DeviceStore.Backend)
	cfg.DeviceStore.Driver = strings.ToLower(cfg.DeviceStore.Driver)

	switch cfg.DeviceStore.Backend {
	case BackendSQL:
	case BackendRedis:
		if !cfg.Redis.Enabled() {
			return Config{}, fmt.Errorf("DEVICE_STORE_BACKEND=redis requires REDIS_URL")
		}
	default:
		return Config{}, fmt.Errorf("unknown DEVICE_STORE_BACKEND %q", cfg.DeviceStore.Backend)
	}

	switch cfg.DeviceStore.Driver {
	case "sqlite", "pgx":
	default:
		return Config{}, fmt.Errorf("unknown DEVICE_STORE_DRIVER %q", cfg.DeviceStore.Driver)
	}

	if cfg.TaxRate < 0 || cfg.TaxRate > 100 {
		return Config{}, fmt.Errorf("TAX_RATE must be between 0 and 100, got %v", cfg.TaxRate)
	}

	return cfg, nil
}
