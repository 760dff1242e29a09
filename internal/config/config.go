// Package config resolves runtime settings from the environment. A .env file
// in the working directory is read first; real environment variables win.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for mindmate.
type Config struct {
	// DBPath is the SQLite file backing the local store.
	DBPath string
	// LogFile receives service use-case logs. Empty disables logging.
	LogFile  string
	LogLevel slog.Level
	// RevealDelay is the dashboard's fade-in delay on mount.
	RevealDelay time.Duration
	// SeedPath replaces the built-in mock data when set.
	SeedPath string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dbPath := ".mindmate/mindmate.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".mindmate", "mindmate.db")
	}
	return Config{
		DBPath:      dbPath,
		LogLevel:    slog.LevelInfo,
		RevealDelay: 300 * time.Millisecond,
	}
}

// Load reads .env (if present) and then the environment, falling back to
// defaults for unset or malformed values.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a getenv-style lookup.
func FromEnv(getenv func(string) string) Config {
	cfg := DefaultConfig()

	if v := getenv("MINDMATE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("MINDMATE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := getenv("MINDMATE_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			cfg.LogLevel = lvl
		}
	}
	if v := getenv("MINDMATE_REVEAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.RevealDelay = time.Duration(n) * time.Millisecond
		}
	}
	if v := getenv("MINDMATE_SEED"); v != "" {
		cfg.SeedPath = v
	}

	return cfg
}
