package keymap

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/dshills/voidkeys/internal/logging"
)

// Loader builds keymaps from the defaults and an optional keyfile.
type Loader struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewLoader creates a loader reading keyfiles from fs.
func NewLoader(fs afero.Fs, log zerolog.Logger) *Loader {
	return &Loader{
		fs:  fs,
		log: logging.WithComponent(log, "keymap"),
	}
}

// Load returns the default keymap when path is empty. Otherwise it reads
// the keyfile at path and applies it on top of the defaults.
//
// A keyfile that cannot be read or parsed is an error; there is no
// fallback to the defaults.
func (l *Loader) Load(path string) (*Keymap, error) {
	if path == "" {
		l.log.Debug().Msg("no keyfile configured, using default bindings")
		return Default(), nil
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		l.log.Error().Err(err).Str("path", path).Msg("cannot read keyfile")
		return nil, fmt.Errorf("reading keyfile: %w", err)
	}

	km, err := Parse(string(data), Default())
	if err != nil {
		l.log.Error().Err(err).Str("path", path).Msg("invalid keyfile")
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	l.log.Debug().Str("path", path).Int("bindings", km.Len()).Msg("keyfile loaded")
	return km, nil
}

// Load builds a keymap from the OS filesystem without logging.
// An empty path yields the defaults.
func Load(path string) (*Keymap, error) {
	return NewLoader(afero.NewOsFs(), zerolog.Nop()).Load(path)
}
