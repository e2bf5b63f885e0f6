package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/romanconv/internal/shell"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Mode       string // "", "decode" or "encode"
	Input      string // value for a one-shot conversion
	OneShot    bool   // convert Input and exit instead of prompting
	MaxDecimal int    // largest value accepted for encoding, 0 for no limit

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if _, err := shell.ParseMode(cfg.Mode); err != nil {
		return nil, err
	}
	if cfg.OneShot && cfg.Mode == "" {
		return nil, errors.New("a one-shot conversion needs a mode: 'decode' or 'encode'")
	}
	if cfg.MaxDecimal < 0 {
		return nil, fmt.Errorf("invalid max-decimal %d: must not be negative", cfg.MaxDecimal)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}
