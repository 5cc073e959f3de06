package inits

import (
	"fmt"
	"strings"
	"time"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted in STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds everything main needs to wire the service.
type Config struct {
	Environment        string   `mapstructure:"ENVIRONMENT"`
	Port               string   `mapstructure:"PORT"`
	LogLevel           string   `mapstructure:"LOG_LEVEL"`
	StoreDriver        string   `mapstructure:"STORE_DRIVER"`
	DatabaseURL        string   `mapstructure:"DATABASE_URL"`
	AllowedHosts       []string `mapstructure:"ALLOWED_HOSTS"`
	RateLimitPerMinute float64  `mapstructure:"RATE_LIMIT_PER_MINUTE"`
	MaxFormBytes       int64    `mapstructure:"MAX_FORM_BYTES"`
	// SummaryInterval is how often the memory store logs its record counts.
	SummaryInterval time.Duration `mapstructure:"SUMMARY_INTERVAL"`
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LoadConfig reads envFile (if present) into the environment, then resolves
// the configuration from environment variables and defaults.
func LoadConfig(envFile string) (*Config, error) {
	log := logger.GetLogger()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Warnw("No env file loaded, using process environment", "file", envFile, "error", err)
		}
	}

	v := viper.New()
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("ALLOWED_HOSTS", "")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("MAX_FORM_BYTES", 64<<10)
	v.SetDefault("SUMMARY_INTERVAL", "1h")
	v.AutomaticEnv()

	cfg := &Config{
		Environment:        v.GetString("ENVIRONMENT"),
		Port:               v.GetString("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		StoreDriver:        strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:        v.GetString("DATABASE_URL"),
		AllowedHosts:       splitList(v.GetString("ALLOWED_HOSTS")),
		RateLimitPerMinute: v.GetFloat64("RATE_LIMIT_PER_MINUTE"),
		MaxFormBytes:       v.GetInt64("MAX_FORM_BYTES"),
		SummaryInterval:    v.GetDuration("SUMMARY_INTERVAL"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"store_driver", cfg.StoreDriver,
		"allowed_hosts", cfg.AllowedHosts)
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is %q", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %v", c.RateLimitPerMinute)
	}
	if c.MaxFormBytes <= 0 {
		return fmt.Errorf("MAX_FORM_BYTES must be positive, got %d", c.MaxFormBytes)
	}
	if c.SummaryInterval <= 0 {
		return fmt.Errorf("SUMMARY_INTERVAL must be positive, got %s", c.SummaryInterval)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
