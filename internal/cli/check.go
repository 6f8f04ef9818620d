package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/voidkeys/internal/input/keymap"
)

var errNoKeyfile = errors.New("no keyfile given: pass a path, --keyfile or set KEYFILE")

func newCheckCmd(c *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a keyfile",
		Long: `Parse a keyfile against the built-in bindings and report the first error.

Without an argument the configured keyfile (--keyfile or KEYFILE) is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.Config.KeyFile
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return errNoKeyfile
			}

			km, err := c.loadKeyfile(cmd.ErrOrStderr(), path)
			if err != nil {
				return err
			}

			changed := countChanged(keymap.Default(), km)
			th := defaultTheme()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d bindings, %d changed from defaults\n",
				th.OK.Render("ok"), path, km.Len(), changed)
			return nil
		},
	}
}

// countChanged counts bindings of km that are new or differ from base.
func countChanged(base, km *keymap.Keymap) int {
	n := 0
	for _, e := range km.Entries() {
		if a, ok := base.Lookup(e.Mode, e.Key); !ok || a != e.Action {
			n++
		}
	}
	return n
}
