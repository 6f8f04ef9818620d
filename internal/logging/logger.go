// Package logging builds the zerolog loggers used across voidkeys.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// New creates a zerolog logger from cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.Format != FormatJSON {
		tf := cfg.TimeFormat
		if tf == "" {
			tf = time.RFC3339
		}
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: tf,
			NoColor:    cfg.Output != nil,
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel parses a level name. Unknown or empty names yield info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ParseFormat normalizes a format name. Anything but "json" is console.
func ParseFormat(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), FormatJSON) {
		return FormatJSON
	}
	return FormatConsole
}

// WithComponent returns a child logger tagged with a component field.
func WithComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
