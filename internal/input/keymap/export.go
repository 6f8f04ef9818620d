package keymap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/key"
)

// KeyfileLine returns the keyfile line that reproduces e, if one exists.
// Bindings for payload actions, keys outside the keyfile grammar, keys
// containing ':' and bindings in a mode other than the action's override
// mode cannot be written.
func KeyfileLine(e Entry) (string, bool) {
	name, ok := action.Name(e.Action.Kind)
	if !ok || e.Action.Kind.HasPayload() {
		return "", false
	}
	if OverrideMode(e.Action) != e.Mode {
		return "", false
	}
	spec, ok := key.FormatSpec(e.Key)
	if !ok || strings.Contains(spec, ":") {
		return "", false
	}
	return name + ": " + spec, true
}

// WriteKeyfile writes km in keyfile format. Bindings the format cannot
// express are listed as comments so the output stays loadable.
func WriteKeyfile(w io.Writer, km *Keymap) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# voidkeys keyfile")
	fmt.Fprintln(bw, "# <action_name>: <key_spec>")

	for _, m := range action.Modes() {
		entries := km.EntriesForMode(m)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(bw, "\n# %s mode\n", strings.ToLower(m.String()))
		for _, e := range entries {
			if line, ok := KeyfileLine(e); ok {
				fmt.Fprintln(bw, line)
			} else {
				fmt.Fprintf(bw, "# (fixed) %s: %s\n", e.Action, e.Key)
			}
		}
	}

	return bw.Flush()
}
