// Package config resolves voidkeys runtime settings from defaults, the
// environment and command line flags.
//
// Precedence, highest first:
//
//  1. Command line flags (--keyfile, --log-level, --log-format)
//  2. Environment (KEYFILE, VOIDKEYS_LOG_LEVEL, VOIDKEYS_LOG_FORMAT)
//  3. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys.
const (
	KeyKeyFile   = "keyfile"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
)

// Environment variables.
const (
	EnvKeyFile   = "KEYFILE"
	EnvLogLevel  = "VOIDKEYS_LOG_LEVEL"
	EnvLogFormat = "VOIDKEYS_LOG_FORMAT"
)

// Errors returned by Validate.
var (
	// ErrInvalidLogLevel indicates an unrecognized log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat indicates an unrecognized log format name.
	ErrInvalidLogFormat = errors.New("invalid log format")
)

var (
	validLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "warning": true, "error": true, "off": true}
	validFormats = map[string]bool{"console": true, "json": true}
)

// Config holds the resolved settings.
type Config struct {
	// KeyFile is the override file path. Empty means built-in bindings only.
	KeyFile string
	// LogLevel is the minimum level name.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Validate checks the log settings. KeyFile is validated when loaded.
func (c Config) Validate() error {
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if !validFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	return nil
}

// Loader resolves a Config through viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults set and environment bound.
func NewLoader() (*Loader, error) {
	v := viper.New()

	def := Default()
	v.SetDefault(KeyKeyFile, def.KeyFile)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyLogFormat, def.LogFormat)

	bindings := map[string]string{
		KeyKeyFile:   EnvKeyFile,
		KeyLogLevel:  EnvLogLevel,
		KeyLogFormat: EnvLogFormat,
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	return &Loader{v: v}, nil
}

// BindFlags binds any of the known flags present in fs. A flag overrides
// the environment only when set on the command line.
func (l *Loader) BindFlags(fs *pflag.FlagSet) error {
	for _, key := range []string{KeyKeyFile, KeyLogLevel, KeyLogFormat} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", key, err)
		}
	}
	return nil
}

// Load returns the resolved and validated settings.
func (l *Loader) Load() (Config, error) {
	cfg := Config{
		KeyFile:   l.v.GetString(KeyKeyFile),
		LogLevel:  strings.TrimSpace(l.v.GetString(KeyLogLevel)),
		LogFormat: strings.TrimSpace(l.v.GetString(KeyLogFormat)),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load resolves settings from defaults and the environment.
func Load() (Config, error) {
	l, err := NewLoader()
	if err != nil {
		return Config{}, err
	}
	return l.Load()
}
