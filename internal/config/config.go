// Package config loads runtime settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the environment leaves a knob unset.
const (
	DefaultMaxBytes = 20 << 20 // 20 MiB of recovered text
	DefaultMaxLines = 200_000
	DefaultPort     = 8080
)

// Config holds the runtime settings. Values are fixed at load time.
type Config struct {
	// MaxBytes and MaxLines cap the size of one statement's text.
	MaxBytes int
	MaxLines int

	// CategoriesFile optionally points at a JSON keyword table that
	// replaces the built-in categories.
	CategoriesFile string

	// Port is the HTTP listen port for --serve.
	Port int

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is merged in first when present; a missing file is not
// an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		MaxBytes: DefaultMaxBytes,
		MaxLines: DefaultMaxLines,
		Port:     DefaultPort,
		LogLevel: "info",
	}

	var err error
	if cfg.MaxBytes, err = intEnv("EXTRATO_MAX_BYTES", cfg.MaxBytes); err != nil {
		return Config{}, err
	}
	if cfg.MaxLines, err = intEnv("EXTRATO_MAX_LINES", cfg.MaxLines); err != nil {
		return Config{}, err
	}
	if cfg.Port, err = intEnv("EXTRATO_PORT", cfg.Port); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("EXTRATO_CATEGORIES_FILE"); v != "" {
		cfg.CategoriesFile = v
	}
	if v := os.Getenv("EXTRATO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

func intEnv(name string, fallback int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", name, v)
	}
	return n, nil
}
