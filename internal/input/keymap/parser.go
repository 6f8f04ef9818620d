package keymap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/key"
)

// Keyfile errors
var (
	ErrMalformedLine = errors.New("expected exactly one ':' separator")
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// ParseError reports a keyfile line that could not be applied.
type ParseError struct {
	// Line is the 1-indexed line number.
	Line int

	// Text is the raw line.
	Text string

	// Err wraps one of ErrMalformedLine, ErrUnknownAction or ErrUnknownKey.
	Err error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrMalformedLine) {
		return fmt.Sprintf("keyfile line %d: %v: %s", e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("invalid keyfile binding at line %d: %v: %s", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse applies keyfile text on top of base and returns the result.
//
// base is never modified. On error no keymap is returned, so a keyfile is
// either applied in full or not at all.
func Parse(text string, base *Keymap) (*Keymap, error) {
	km := base.clone()

	for i, line := range strings.Split(text, "\n") {
		lineNum := i + 1
		line = strings.TrimSuffix(line, "\r")

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		b, a, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		km.set(b, a)
	}

	return km, nil
}

// parseLine parses "<action_name>: <key_spec>".
func parseLine(line string) (Binding, action.Action, error) {
	if strings.Count(line, ":") != 1 {
		return Binding{}, action.Action{}, ErrMalformedLine
	}

	rawAction, rawKey, _ := strings.Cut(line, ":")
	rawAction = strings.TrimSpace(rawAction)
	rawKey = strings.TrimSpace(rawKey)

	a, ok := action.FromName(rawAction)
	if !ok {
		return Binding{}, action.Action{}, fmt.Errorf("%w %q", ErrUnknownAction, rawAction)
	}

	k, err := key.ParseSpec(rawKey)
	if err != nil {
		return Binding{}, action.Action{}, fmt.Errorf("%w %q: %w", ErrUnknownKey, rawKey, err)
	}

	return Binding{Mode: OverrideMode(a), Key: k}, a, nil
}
