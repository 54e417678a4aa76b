// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Board  BoardConfig  `toml:"board"`
	Timing TimingConfig `toml:"timing"`
	Faces  FacesConfig  `toml:"faces"`
	Log    LogConfig    `toml:"log"`
}

// BoardConfig maps board size settings.
type BoardConfig struct {
	Pairs    *int `toml:"pairs"`
	MinPairs *int `toml:"min-pairs"`
	MaxPairs *int `toml:"max-pairs"`
}

// TimingConfig holds Go duration strings such as "500ms" or "4s".
type TimingConfig struct {
	RevealDelay  *string `toml:"reveal-delay"`
	SpinDuration *string `toml:"spin-duration"`
}

// FacesConfig lists face catalog files or directories.
type FacesConfig struct {
	Files []string `toml:"files"`
}

type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Durations parses the timing section. Unset values come back as zero.
func (t TimingConfig) Durations() (reveal, spin time.Duration, err error) {
	if reveal, err = parseDuration("reveal-delay", t.RevealDelay); err != nil {
		return 0, 0, err
	}
	if spin, err = parseDuration("spin-duration", t.SpinDuration); err != nil {
		return 0, 0, err
	}
	return reveal, spin, nil
}

func parseDuration(name string, value *string) (time.Duration, error) {
	if value == nil {
		return 0, nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", name)
	}
	return d, nil
}
