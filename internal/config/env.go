package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names read by Load
const (
	EnvBaseURL            = "SLEEPER_BASE_URL"
	EnvRequestsPerSecond  = "SLEEPER_REQUESTS_PER_SECOND"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLeagueSettingsPath = "LEAGUE_SETTINGS_PATH"
)

// Config holds the process-level settings for the server
type Config struct {
	BaseURL            string
	RequestsPerSecond  float64
	LogLevel           logrus.Level
	LeagueSettingsPath string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the .env file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{
		BaseURL:            os.Getenv(EnvBaseURL),
		RequestsPerSecond:  10,
		LogLevel:           logrus.InfoLevel,
		LeagueSettingsPath: os.Getenv(EnvLeagueSettingsPath),
	}

	if raw := os.Getenv(EnvRequestsPerSecond); raw != "" {
		rps, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvRequestsPerSecond, raw, err)
		}
		cfg.RequestsPerSecond = rps
	}

	if raw := os.Getenv(EnvLogLevel); raw != "" {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}
