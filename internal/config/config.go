// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/flight-offer-aggregator/internal/domain"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/logger"
	"github.com/flight-search/flight-offer-aggregator/internal/infrastructure/ratelimit"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Amadeus AmadeusConfig
	Search  SearchConfig
	Logging logger.Config
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// AmadeusConfig holds the offer search API credentials and call policy.
type AmadeusConfig struct {
	APIKey         string        `env:"AMADEUS_API_KEY"`
	APISecret      string        `env:"AMADEUS_API_SECRET"`
	BaseURL        string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	MaxAttempts    int           `env:"AMADEUS_MAX_ATTEMPTS" envDefault:"3"`
	RequestTimeout time.Duration `env:"AMADEUS_REQUEST_TIMEOUT" envDefault:"10s"`
	RetryDelay     time.Duration `env:"AMADEUS_RETRY_DELAY" envDefault:"200ms"`
	RetryMaxDelay  time.Duration `env:"AMADEUS_RETRY_MAX_DELAY" envDefault:"5s"`
	RateLimit      ratelimit.Config
}

// SearchConfig bounds a whole search invocation, retries and rate limit waits included.
type SearchConfig struct {
	Timeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"20s"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
// Missing credentials produce an error matching domain.ErrConfiguration.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func validate(cfg *Config) error {
	if err := validateCredentials(cfg.Amadeus); err != nil {
		return err
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	u, err := url.Parse(cfg.Amadeus.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("AMADEUS_BASE_URL must be an absolute URL, got %q", cfg.Amadeus.BaseURL)
	}
	if cfg.Amadeus.MaxAttempts < 1 || cfg.Amadeus.MaxAttempts > 10 {
		return fmt.Errorf("AMADEUS_MAX_ATTEMPTS must be between 1 and 10, got %d", cfg.Amadeus.MaxAttempts)
	}
	if cfg.Amadeus.RetryDelay <= 0 {
		return fmt.Errorf("AMADEUS_RETRY_DELAY must be positive")
	}
	if cfg.Amadeus.RetryMaxDelay < cfg.Amadeus.RetryDelay {
		return fmt.Errorf("AMADEUS_RETRY_MAX_DELAY (%s) must not be below AMADEUS_RETRY_DELAY (%s)",
			cfg.Amadeus.RetryMaxDelay, cfg.Amadeus.RetryDelay)
	}
	if cfg.Amadeus.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT_RPS must not be negative")
	}
	if cfg.Amadeus.RateLimit.Burst < 1 {
		return fmt.Errorf("AMADEUS_RATE_LIMIT_BURST must be at least 1")
	}

	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}
	if cfg.Amadeus.RequestTimeout <= 0 {
		return fmt.Errorf("AMADEUS_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Amadeus.RequestTimeout > cfg.Search.Timeout {
		return fmt.Errorf("AMADEUS_REQUEST_TIMEOUT (%s) must not exceed SEARCH_TIMEOUT (%s)",
			cfg.Amadeus.RequestTimeout, cfg.Search.Timeout)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

func validateCredentials(a AmadeusConfig) error {
	var missing []string
	if strings.TrimSpace(a.APIKey) == "" {
		missing = append(missing, "AMADEUS_API_KEY")
	}
	if strings.TrimSpace(a.APISecret) == "" {
		missing = append(missing, "AMADEUS_API_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not set", domain.ErrConfiguration, strings.Join(missing, " and "))
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
