// Package mode tracks the editor's current input mode.
//
// The resolver is stateless: every call takes the mode explicitly. The
// Manager is the caller side of that contract. It holds the current mode,
// applies SwitchMode actions as they are resolved, and notifies listeners
// after each transition.
//
//	┌────────┐  Mode(Insert)  ┌────────┐
//	│ Normal │ ─────────────► │ Insert │
//	│        │ ◄───────────── │        │
//	└────────┘  Mode(Normal)  └────────┘
package mode
