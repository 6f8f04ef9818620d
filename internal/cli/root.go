// Package cli provides the command-line interface for voidkeys.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dshills/voidkeys/internal/config"
	"github.com/dshills/voidkeys/internal/input/keymap"
	"github.com/dshills/voidkeys/internal/logging"
)

// CLI holds the state shared by all commands. It is filled in before any
// subcommand runs.
type CLI struct {
	Fs     afero.Fs
	Config config.Config
	LogCfg logging.Config
	Log    zerolog.Logger
}

// NewRootCmd creates the root command for voidkeys.
func NewRootCmd(version, commit, buildDate string) *cobra.Command {
	return newRootCmd(afero.NewOsFs(), version, commit, buildDate)
}

func newRootCmd(fs afero.Fs, version, commit, buildDate string) *cobra.Command {
	c := &CLI{Fs: fs, Log: zerolog.Nop()}

	rootCmd := &cobra.Command{
		Use:   "voidkeys",
		Short: "Inspect and test keybindings for the void outline editor",
		Long: `voidkeys resolves terminal key and mouse events into editor actions.

Bindings come from the built-in table, optionally overridden by the keyfile
named with --keyfile or the KEYFILE environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(config.KeyKeyFile, "", "keyfile with binding overrides (default $KEYFILE)")
	pf.String(config.KeyLogLevel, "", "log level: trace, debug, info, warn, error, off")
	pf.String(config.KeyLogFormat, "", "log format: console, json")

	rootCmd.AddCommand(
		newBindingsCmd(c),
		newCheckCmd(c),
		newTraceCmd(c),
		newVersionCmd(version, commit, buildDate),
	)

	return rootCmd
}

func (c *CLI) init(cmd *cobra.Command) error {
	loader, err := config.NewLoader()
	if err != nil {
		return err
	}
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	c.Config = cfg
	c.LogCfg = logging.DefaultConfig()
	c.LogCfg.Level = logging.ParseLevel(cfg.LogLevel)
	c.LogCfg.Format = logging.ParseFormat(cfg.LogFormat)
	c.LogCfg.TimeFormat = time.Kitchen
	c.LogCfg.Output = cmd.ErrOrStderr()
	c.Log = logging.New(c.LogCfg)
	c.Log.Debug().
		Str("keyfile", cfg.KeyFile).
		Str("level", cfg.LogLevel).
		Msg("configuration loaded")
	return nil
}

// keymap builds the effective keymap: defaults plus the configured keyfile.
func (c *CLI) keymap(w io.Writer) (*keymap.Keymap, error) {
	km, err := c.loadKeyfile(w, c.Config.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("loading keymap: %w", err)
	}
	return km, nil
}

// loadKeyfile applies the keyfile at path to the defaults. Unknown action
// names get a suggestion written to w.
func (c *CLI) loadKeyfile(w io.Writer, path string) (*keymap.Keymap, error) {
	km, err := keymap.NewLoader(c.Fs, c.Log).Load(path)
	if err != nil {
		if hint := unknownActionHint(err); hint != "" {
			fmt.Fprintln(w, hint)
		}
		return nil, err
	}
	return km, nil
}

func newVersionCmd(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "voidkeys %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", buildDate)
		},
	}
}
