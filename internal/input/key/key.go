package key

import "fmt"

// Code identifies the physical key of a Key.
// Character keys use CodeRune and carry the character in Key.Rune.
type Code uint8

const (
	// CodeNone represents no key.
	CodeNone Code = iota

	// CodeRune is used for character keys (letters, digits, punctuation,
	// space, newline and tab).
	CodeRune

	// Special keys
	CodeEsc
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeBackTab
	CodeNull

	// Arrow keys
	CodeUp
	CodeDown
	CodeLeft
	CodeRight

	// Function keys
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
)

// String returns a human-readable name for the code.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "None"
	case CodeRune:
		return "Rune"
	case CodeEsc:
		return "Esc"
	case CodeBackspace:
		return "Backspace"
	case CodeDelete:
		return "Delete"
	case CodeInsert:
		return "Insert"
	case CodeHome:
		return "Home"
	case CodeEnd:
		return "End"
	case CodePageUp:
		return "PageUp"
	case CodePageDown:
		return "PageDown"
	case CodeBackTab:
		return "BackTab"
	case CodeNull:
		return "Null"
	case CodeUp:
		return "Up"
	case CodeDown:
		return "Down"
	case CodeLeft:
		return "Left"
	case CodeRight:
		return "Right"
	}
	if c.IsFunctionKey() {
		return fmt.Sprintf("F%d", c-CodeF1+1)
	}
	return fmt.Sprintf("Code(%d)", c)
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (c Code) IsFunctionKey() bool {
	return c >= CodeF1 && c <= CodeF12
}

// IsArrowKey returns true if this is an arrow key.
func (c Code) IsArrowKey() bool {
	return c >= CodeUp && c <= CodeRight
}

// Key is a single physical input: a character, a named key, or a character
// combined with Ctrl or Alt.
//
// Key is comparable; two keys are the same binding exactly when they are ==.
// Use the constructors rather than filling fields by hand so that unused
// fields stay zero.
type Key struct {
	Code Code
	Rune rune
	Mod  Modifier
}

// Char returns the key for a plain character.
func Char(r rune) Key {
	return Key{Code: CodeRune, Rune: r}
}

// Ctrl returns the key for r pressed with Control.
func Ctrl(r rune) Key {
	return Key{Code: CodeRune, Rune: r, Mod: ModCtrl}
}

// Alt returns the key for r pressed with Alt.
func Alt(r rune) Key {
	return Key{Code: CodeRune, Rune: r, Mod: ModAlt}
}

// Named returns the key for a non-character code.
func Named(c Code) Key {
	return Key{Code: c}
}

// F returns function key n (1-12). Out of range values yield the zero Key.
func F(n int) Key {
	if n < 1 || n > 12 {
		return Key{}
	}
	return Key{Code: CodeF1 + Code(n-1)}
}

// IsChar reports whether k is an unmodified character key.
func (k Key) IsChar() bool {
	return k.Code == CodeRune && k.Mod == ModNone
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k == Key{}
}

// String returns diagnostic text such as "Char('x')", "Ctrl('c')",
// "Alt('P')", "Esc" or "F1".
func (k Key) String() string {
	if k.Code != CodeRune {
		return k.Code.String()
	}
	switch {
	case k.Mod.HasCtrl():
		return fmt.Sprintf("Ctrl(%q)", k.Rune)
	case k.Mod.HasAlt():
		return fmt.Sprintf("Alt(%q)", k.Rune)
	default:
		return fmt.Sprintf("Char(%q)", k.Rune)
	}
}
