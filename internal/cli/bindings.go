package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/key"
	"github.com/dshills/voidkeys/internal/input/keymap"
)

// Output formats for the bindings command.
const (
	formatTable   = "table"
	formatPlain   = "plain"
	formatKeyfile = "keyfile"
)

func newBindingsCmd(c *CLI) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Show the effective keybindings",
		Long: `Print every configured binding after applying the keyfile.

Formats:
  table    styled table grouped by mode (default)
  plain    the "Configured Hotkeys" listing
  keyfile  a keyfile that reproduces the bindings it can express`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			km, err := c.keymap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return writeBindings(cmd.OutOrStdout(), km, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, plain, keyfile")
	return cmd
}

func writeBindings(w io.Writer, km *keymap.Keymap, format string) error {
	switch format {
	case formatTable:
		_, err := io.WriteString(w, renderBindings(km, defaultTheme()))
		return err
	case formatPlain:
		_, err := io.WriteString(w, km.String())
		return err
	case formatKeyfile:
		return keymap.WriteKeyfile(w, km)
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatTable, formatPlain, formatKeyfile)
	}
}

// renderBindings draws one table per mode.
func renderBindings(km *keymap.Keymap, th theme) string {
	var b strings.Builder

	for i, m := range action.Modes() {
		entries := km.EntriesForMode(m)
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(th.Title.Render(fmt.Sprintf("%s mode (%d)", m, len(entries))))
		b.WriteString("\n")

		if len(entries) == 0 {
			b.WriteString(th.Muted.Render("no bindings"))
			b.WriteString("\n")
			continue
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(th.Border).
			Headers("KEY", "ACTION", "NAME").
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return th.Header
				case col == 2:
					return th.Muted
				default:
					return th.Cell
				}
			})

		for _, e := range entries {
			t.Row(displayKey(e.Key), e.Action.String(), actionName(e.Action))
		}
		b.WriteString(t.Render())
		b.WriteString("\n")
	}

	return b.String()
}

// displayKey prefers keyfile notation and falls back to the key's own form.
func displayKey(k key.Key) string {
	if spec, ok := key.FormatSpec(k); ok {
		return spec
	}
	return k.String()
}

func actionName(a action.Action) string {
	if a.Kind.HasPayload() {
		return "-"
	}
	if name, ok := action.Name(a.Kind); ok {
		return name
	}
	return "-"
}
