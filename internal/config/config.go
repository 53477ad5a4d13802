// Package config holds the settings of the console program.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/benbeisheim/chess-console/internal/errors"
)

// DefaultLogFile is where logs go unless told otherwise. The terminal belongs
// to the board, so logging never writes to stdout or stderr.
const DefaultLogFile = "chess.log"

// Config holds the console program settings.
type Config struct {
	ASCII    bool       // Draw pieces as letters instead of chess symbols
	LogFile  string     // Log destination, empty disables logging
	LogLevel slog.Level // Minimum level written to LogFile
}

// NewConfig returns a Config with default values.
func NewConfig() *Config {
	return &Config{
		LogFile:  DefaultLogFile,
		LogLevel: slog.LevelInfo,
	}
}

// SetLogLevel parses a level name such as "debug" or "warn".
func (c *Config) SetLogLevel(name string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return fmt.Errorf("log level %q: %w", name, errors.ErrInvalidConfig)
	}
	c.LogLevel = level
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.LogLevel < slog.LevelDebug || c.LogLevel > slog.LevelError {
		return fmt.Errorf("log level %v out of range: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if c.LogFile != strings.TrimSpace(c.LogFile) {
		return fmt.Errorf("log file %q has surrounding spaces: %w", c.LogFile, errors.ErrInvalidConfig)
	}
	return nil
}
