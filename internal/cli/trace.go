package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/event"
	"github.com/dshills/voidkeys/internal/input/keymap"
	"github.com/dshills/voidkeys/internal/input/mode"
	"github.com/dshills/voidkeys/internal/logging"
	"github.com/dshills/voidkeys/internal/terminal"
)

func newTraceCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Resolve live terminal input and print each action",
		Long: `Open the terminal, read key and mouse events and show the action each one
resolves to. Mode switches are applied as they happen. The Quit action exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			km, err := c.keymap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			scr, err := terminal.Open()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}
			defer scr.Close()

			// Diagnostics go to the screen while it owns the terminal
			logCfg := c.LogCfg
			logCfg.Format = logging.FormatConsole
			logCfg.Output = screenWriter{scr}
			log := logging.New(logCfg)

			resolver := keymap.NewResolver(km, keymap.WithLogger(logging.WithComponent(log, "resolver")))
			t := newTracer(resolver, mode.NewManager())
			scr.Println(t.banner())

			for {
				ev, ok := scr.Next()
				if !ok {
					return nil
				}
				line, quit := t.step(ev)
				if line != "" {
					scr.Println(line)
				}
				if quit {
					return nil
				}
			}
		},
	}
}

// tracer resolves events against the current mode and applies mode switches.
type tracer struct {
	resolver *keymap.Resolver
	modes    *mode.Manager

	// note describes the mode change made by the last step, if any.
	note string
}

func newTracer(r *keymap.Resolver, m *mode.Manager) *tracer {
	t := &tracer{resolver: r, modes: m}
	m.OnChange(func(_, to action.Mode) {
		t.note = fmt.Sprintf(" (now %s)", to)
	})
	return t
}

func (t *tracer) banner() string {
	return fmt.Sprintf("voidkeys trace: %d bindings, mode %s. Press the Quit binding to exit.",
		t.resolver.Keymap().Len(), t.modes.Current())
}

// step resolves ev and returns the line to show and whether to stop.
// Unresolved events produce no line.
func (t *tracer) step(ev event.Event) (string, bool) {
	m := t.modes.Current()
	a, ok := t.resolver.Resolve(ev, m)
	if !ok {
		return "", false
	}

	t.note = ""
	t.modes.Apply(a)
	return fmt.Sprintf("[%s] %s -> %s%s", m, ev, a, t.note), a.Kind == action.Quit
}

// screenWriter shows log output as screen lines.
type screenWriter struct {
	scr *terminal.Screen
}

func (w screenWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.scr.Println(line)
	}
	return len(p), nil
}
