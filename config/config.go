// Package config loads the server configuration.
//
// Sources, lowest precedence first:
//
//  1. Defaults (see Default)
//  2. YAML file given by -config or CONFIG_FILE
//  3. .env file given by -env-file, or ./.env when present
//  4. Environment variables
//  5. Command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/warp/rent-ledger/logging"
)

type Config struct {
	Port           int      `yaml:"port" env:"PORT"`
	LogLevel       string   `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat      string   `yaml:"log_format" env:"LOG_FORMAT"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	// MaxPeriodDays caps the length of a requested rental period.
	MaxPeriodDays int `yaml:"max_period_days" env:"MAX_PERIOD_DAYS"`

	// MaxWeeklyRent caps the accepted weekly rent, in whole currency units.
	MaxWeeklyRent int64 `yaml:"max_weekly_rent" env:"MAX_WEEKLY_RENT"`

	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

func Default() Config {
	return Config{
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "json",
		AllowedOrigins:  []string{"http://localhost:5173", "http://localhost:8080"},
		MaxPeriodDays:   36600,
		MaxWeeklyRent:   1_000_000_000,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Load builds the configuration from args (without the program name) and
// the environment.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (overrides CONFIG_FILE)")
	envFile := fs.String("env-file", "", ".env file to load (default ./.env when present)")
	port := fs.Int("port", 0, "HTTP server port (overrides PORT)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			return nil, fmt.Errorf("config.Load: env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := Default()

	path := *configPath
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if *port != 0 {
		cfg.Port = *port
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be json or text", c.LogFormat))
	}
	if c.MaxPeriodDays < 1 {
		errs = append(errs, fmt.Errorf("invalid max period days %d: must be positive", c.MaxPeriodDays))
	}
	if c.MaxWeeklyRent < 1 {
		errs = append(errs, fmt.Errorf("invalid max weekly rent %d: must be positive", c.MaxWeeklyRent))
	}

	for _, t := range []struct {
		name  string
		value time.Duration
	}{
		{"read_timeout", c.ReadTimeout},
		{"write_timeout", c.WriteTimeout},
		{"idle_timeout", c.IdleTimeout},
		{"shutdown_timeout", c.ShutdownTimeout},
	} {
		if t.value <= 0 {
			errs = append(errs, fmt.Errorf("invalid %s %s: must be positive", t.name, t.value))
		}
	}

	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
