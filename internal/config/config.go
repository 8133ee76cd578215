// Package config loads tool configuration from the environment, with an
// optional .env file in the working directory for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/contactkeval/option-pricer/internal/logger"
)

// Config carries the environment-driven settings of the pricer. Flag values
// always win over these; they only fill gaps (live-data credentials, the
// default rate for fetched snapshots, log verbosity).
type Config struct {
	// APIKey authenticates live market data requests. Read from
	// MASSIVE_API_KEY, falling back to POLYGON_API_KEY.
	APIKey string

	// RiskFreeRate is the default continuously-compounded annual rate used
	// when pricing from a fetched snapshot. Read from RISK_FREE_RATE.
	RiskFreeRate float64

	// Verbosity is the default log level. Read from LOG_VERBOSITY.
	Verbosity int
}

// Load reads the optional .env file and assembles a Config from the
// environment. A missing .env is not an error; a malformed numeric variable
// is.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		logger.Debugf(".env not loaded: %v", err)
	}

	cfg := Config{
		APIKey: os.Getenv("MASSIVE_API_KEY"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("POLYGON_API_KEY")
	}

	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parsing RISK_FREE_RATE %q: %w", v, err)
		}
		cfg.RiskFreeRate = rate
	}

	if v := os.Getenv("LOG_VERBOSITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing LOG_VERBOSITY %q: %w", v, err)
		}
		cfg.Verbosity = n
	}

	return cfg, nil
}
