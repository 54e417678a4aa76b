package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go-match/internal/config"

	"github.com/rs/zerolog"
)

const (
	envLogLevel = "GO_MATCH_LOG_LEVEL"
	envLogFile  = "GO_MATCH_LOG_FILE"
)

// newLogger builds the session logger. The terminal belongs to the TUI, so
// records go to a file; the level defaults to disabled.
func newLogger(cfg config.LogConfig) (zerolog.Logger, func() error, error) {
	noClose := func() error { return nil }

	level := "disabled"
	if cfg.Level != nil {
		level = *cfg.Level
	}
	level = getEnv(envLogLevel, level)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), noClose, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.Disabled {
		return zerolog.Nop(), noClose, nil
	}

	path := config.DefaultLogPath()
	if cfg.File != nil {
		path = *cfg.File
	}
	path = getEnv(envLogFile, path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), noClose, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), noClose, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f.Close, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
