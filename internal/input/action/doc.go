// Package action defines the closed vocabulary of editor commands that
// input events resolve to.
//
// An Action is pure data. Nullary commands (Quit, Save, SelectUp, ...) are
// identified by their Kind alone. A few kinds carry a payload:
//
//   - SwitchMode carries the target Mode
//   - Char carries the active Mode and the typed rune
//   - LeftClick, RightClick and Release carry zero-based column/row coordinates
//
// Actions are comparable, so they can be used as map values and compared
// with == in tests.
//
// # Names
//
// Keyfiles refer to nullary commands by lowercase, underscore-separated
// names ("quit", "create_sibling", "toggle_show_logs"). FromName resolves a
// name; Name returns it back for display and export.
package action
