// Package key provides the key value type and the keyfile key grammar.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Code: Identifies a physical key (special keys, arrows, function keys, or runes)
//   - Modifier: Control or Alt held with a character key
//   - Key: A comparable (Code, Rune, Modifier) triple used as a binding key
//
// # Key Specifications
//
// Keyfiles name keys with a small, case-sensitive grammar:
//
//   - Names: "esc", "pgup", "pgdn", "del", "backspace", "up", "down", "left", "right"
//   - Whitespace characters: "space", "enter" (newline), "tab"
//   - Single characters: "j", "K", "/"
//   - With modifiers: "C-c" (Ctrl+c), "A-P" (Alt+P)
//
// Enter and Tab are character keys ('\n' and '\t'), matching what a raw
// terminal delivers.
package key
