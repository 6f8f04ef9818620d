package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// namedSpecs maps the literal keyfile names to keys.
// Names are case-sensitive.
var namedSpecs = map[string]Key{
	"esc":       Named(CodeEsc),
	"pgup":      Named(CodePageUp),
	"pgdn":      Named(CodePageDown),
	"del":       Named(CodeDelete),
	"backspace": Named(CodeBackspace),
	"up":        Named(CodeUp),
	"down":      Named(CodeDown),
	"left":      Named(CodeLeft),
	"right":     Named(CodeRight),

	"space": Char(' '),
	"enter": Char('\n'),
	"tab":   Char('\t'),
}

// ParseSpec parses a keyfile key specification.
//
// Supported forms, checked in this order:
//   - Names: "esc", "pgup", "pgdn", "del", "backspace", "up", "down",
//     "left", "right", "space", "enter", "tab"
//   - A single character: "j", "K", "/"
//   - Alt: "A-" followed by a character, e.g. "A-P"
//   - Control: "C-" followed by a character, e.g. "C-c"
//
// For the modifier forms only the character right after the prefix is
// used. The caller is expected to have trimmed surrounding whitespace.
func ParseSpec(spec string) (Key, error) {
	if spec == "" {
		return Key{}, ErrEmptySpec
	}

	if k, ok := namedSpecs[spec]; ok {
		return k, nil
	}

	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return Char(r), nil
	}

	if rest, ok := strings.CutPrefix(spec, "A-"); ok {
		if r, ok := firstRune(rest); ok {
			return Alt(r), nil
		}
	} else if rest, ok := strings.CutPrefix(spec, "C-"); ok {
		if r, ok := firstRune(rest); ok {
			return Ctrl(r), nil
		}
	}

	return Key{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// MustParseSpec parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParseSpec(spec string) Key {
	k, err := ParseSpec(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return k
}

// FormatSpec returns the keyfile specification for k.
// The second result is false when the grammar cannot express k
// (function keys, Home/End/Insert, combined modifiers, or whitespace
// other than space, enter and tab).
func FormatSpec(k Key) (string, bool) {
	if k.Code != CodeRune {
		for spec, named := range namedSpecs {
			if named == k {
				return spec, true
			}
		}
		return "", false
	}

	switch k.Mod {
	case ModNone:
		switch k.Rune {
		case ' ':
			return "space", true
		case '\n':
			return "enter", true
		case '\t':
			return "tab", true
		}
		if unicode.IsSpace(k.Rune) {
			return "", false
		}
		return string(k.Rune), true
	case ModCtrl, ModAlt:
		// Keyfile values are trimmed, so a trailing space would not survive
		if unicode.IsSpace(k.Rune) {
			return "", false
		}
		return k.Mod.Prefix() + string(k.Rune), true
	default:
		return "", false
	}
}
