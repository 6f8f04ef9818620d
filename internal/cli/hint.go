package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/fuzzy"
	"github.com/dshills/voidkeys/internal/input/keymap"
)

// unknownActionHint suggests the closest action name when err reports an
// unknown action in a keyfile. It returns "" when there is nothing to say.
func unknownActionHint(err error) string {
	var perr *keymap.ParseError
	if !errors.Is(err, keymap.ErrUnknownAction) || !errors.As(err, &perr) {
		return ""
	}

	name, _, _ := strings.Cut(perr.Text, ":")
	suggestions := fuzzy.Suggest(strings.TrimSpace(name), action.Names(), 1)
	if len(suggestions) == 0 {
		return ""
	}
	return fmt.Sprintf("hint: line %d: did you mean %q?", perr.Line, suggestions[0])
}
