package keymap

import (
	"fmt"
	"strings"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/key"
)

// Binding is the lookup key of a Keymap: a key pressed in a mode.
type Binding struct {
	Mode action.Mode
	Key  key.Key
}

// String returns "(Mode, Key)".
func (b Binding) String() string {
	return fmt.Sprintf("(%s, %s)", b.Mode, b.Key)
}

// Entry is a binding together with its action.
type Entry struct {
	Binding
	Action action.Action
}

// Keymap holds key bindings for all modes.
//
// The exported API is read-only; tables are built by Default, Parse and
// Load. Keymap is safe for concurrent reads.
type Keymap struct {
	actions map[Binding]action.Action

	// order records first insertion of each binding for Entries.
	order []Binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{
		actions: make(map[Binding]action.Action),
		order:   make([]Binding, 0),
	}
}

// set binds b to a, replacing any existing action for b.
func (k *Keymap) set(b Binding, a action.Action) {
	if _, exists := k.actions[b]; !exists {
		k.order = append(k.order, b)
	}
	k.actions[b] = a
}

// Lookup returns the action bound to pressed in mode m.
func (k *Keymap) Lookup(m action.Mode, pressed key.Key) (action.Action, bool) {
	a, ok := k.actions[Binding{Mode: m, Key: pressed}]
	return a, ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	return len(k.actions)
}

// Entries returns all bindings in first-insertion order.
// The order is for display only.
func (k *Keymap) Entries() []Entry {
	entries := make([]Entry, 0, len(k.order))
	for _, b := range k.order {
		entries = append(entries, Entry{Binding: b, Action: k.actions[b]})
	}
	return entries
}

// EntriesForMode returns the bindings of a single mode.
func (k *Keymap) EntriesForMode(m action.Mode) []Entry {
	var entries []Entry
	for _, e := range k.Entries() {
		if e.Mode == m {
			entries = append(entries, e)
		}
	}
	return entries
}

// clone creates a deep copy of the keymap.
func (k *Keymap) clone() *Keymap {
	c := &Keymap{
		actions: make(map[Binding]action.Action, len(k.actions)),
		order:   make([]Binding, len(k.order)),
	}
	for b, a := range k.actions {
		c.actions[b] = a
	}
	copy(c.order, k.order)
	return c
}

// String lists every binding, one per line, under a "Configured Hotkeys:"
// header. It is meant for help screens and logs.
func (k *Keymap) String() string {
	var sb strings.Builder
	sb.WriteString("Configured Hotkeys:\n")
	for _, e := range k.Entries() {
		fmt.Fprintf(&sb, "    %s: %s\n", e.Action, e.Binding)
	}
	return sb.String()
}
