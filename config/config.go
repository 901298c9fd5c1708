package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvAPIURL      = "NOTES_API_URL"
	EnvLogFile     = "NOTES_LOG_FILE"
	EnvNarrowWidth = "NOTES_NARROW_WIDTH"
	EnvRecentLimit = "NOTES_RECENT_LIMIT"

	DefaultEnvFile     = ".env"
	DefaultNarrowWidth = 90
	DefaultRecentLimit = 5
)

type Config struct {
	// APIURL is the base URL of a notes backend. Nothing talks to it yet;
	// when empty the UI shows a banner asking for it.
	APIURL string

	LogFile string

	// NarrowWidth is the terminal width, in columns, below which the
	// sidebar is hidden unless toggled open.
	NarrowWidth int

	RecentLimit int
}

func Default() Config {
	return Config{
		NarrowWidth: DefaultNarrowWidth,
		RecentLimit: DefaultRecentLimit,
	}
}

// Load reads envFile into the process environment (a missing file is fine,
// and variables already set win) and builds a Config from it.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()
	cfg.APIURL = getEnvAsString(EnvAPIURL, "")
	cfg.LogFile = getEnvAsString(EnvLogFile, "")

	var err error
	if cfg.NarrowWidth, err = getEnvAsInt(EnvNarrowWidth, cfg.NarrowWidth); err != nil {
		return Config{}, err
	}
	if cfg.RecentLimit, err = getEnvAsInt(EnvRecentLimit, cfg.RecentLimit); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.NarrowWidth < 0 {
		return fmt.Errorf("%s must not be negative, got %d", EnvNarrowWidth, c.NarrowWidth)
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("%s must not be negative, got %d", EnvRecentLimit, c.RecentLimit)
	}
	return nil
}

func (c Config) HasAPI() bool {
	return c.APIURL != ""
}

func getEnvAsString(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
