package keymap

import (
	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/key"
)

func normal(k key.Key, a action.Action) Entry {
	return Entry{Binding: Binding{Mode: action.Normal, Key: k}, Action: a}
}

func insert(k key.Key, a action.Action) Entry {
	return Entry{Binding: Binding{Mode: action.Insert, Key: k}, Action: a}
}

// defaultEntries is the compiled-in binding list. Entries are folded in
// order, so a later entry for the same binding wins: Ctrl-p ends up as
// SelectPrevSibling, not AutoArrange.
var defaultEntries = []Entry{
	// Mode switching
	normal(key.Char('i'), action.SwitchTo(action.Insert)),
	normal(key.Char('A'), action.SwitchTo(action.Insert)),
	insert(key.Named(key.CodeEsc), action.SwitchTo(action.Normal)),

	// Scrolling and selection
	normal(key.Named(key.CodePageUp), action.Of(action.ScrollUp)),
	normal(key.Named(key.CodePageDown), action.Of(action.ScrollDown)),
	normal(key.Named(key.CodeDelete), action.Of(action.DeleteSelected)),
	normal(key.Char('k'), action.Of(action.SelectUp)),
	normal(key.Char('j'), action.Of(action.SelectDown)),
	normal(key.Char('h'), action.Of(action.SelectLeft)),
	normal(key.Char('l'), action.Of(action.SelectRight)),

	// Text editing
	insert(key.Named(key.CodeBackspace), action.Of(action.EraseChar)),

	normal(key.F(1), action.Of(action.PrefixJump)),

	// Structure
	normal(key.Char('o'), action.Of(action.CreateSibling)),
	normal(key.Char('\t'), action.Of(action.CreateChild)),
	normal(key.Char('n'), action.Of(action.CreateFreeNode)),
	normal(key.Ctrl('k'), action.Of(action.ExecSelected)),
	normal(key.Ctrl('w'), action.Of(action.DrillDown)),
	normal(key.Ctrl('q'), action.Of(action.PopUp)),
	normal(key.Char('f'), action.Of(action.PrefixJump)),
	normal(key.Ctrl('a'), action.Of(action.ToggleCompleted)),
	normal(key.Ctrl('h'), action.Of(action.ToggleHideCompleted)),
	normal(key.Ctrl('r'), action.Of(action.Arrow)),
	normal(key.Ctrl('p'), action.Of(action.AutoArrange)),
	normal(key.Char(' '), action.Of(action.ToggleCollapsed)),

	// Application
	normal(key.Ctrl('c'), action.Of(action.Quit)),
	normal(key.Ctrl('x'), action.Of(action.Save)),
	normal(key.Ctrl('l'), action.Of(action.ToggleShowLogs)),
	normal(key.Char(':'), action.Of(action.EnterCmd)),
	normal(key.Ctrl('v'), action.Of(action.FindTask)),
	normal(key.Char('y'), action.Of(action.YankPasteNode)),
	normal(key.Char('K'), action.Of(action.RaiseSelected)),
	normal(key.Char('J'), action.Of(action.LowerSelected)),
	normal(key.Char('/'), action.Of(action.Search)),
	normal(key.Char('u'), action.Of(action.UndoDelete)),
	normal(key.Ctrl('?'), action.Of(action.Help)),

	// Tree navigation
	normal(key.Alt('P'), action.Of(action.SelectParent)),
	normal(key.Ctrl('n'), action.Of(action.SelectNextSibling)),
	normal(key.Ctrl('p'), action.Of(action.SelectPrevSibling)),
}

// DefaultEntries returns a copy of the compiled-in binding list in
// declaration order, duplicates included.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultEntries))
	copy(entries, defaultEntries)
	return entries
}

// Default returns a keymap holding the compiled-in bindings.
func Default() *Keymap {
	km := New()
	for _, e := range defaultEntries {
		km.set(e.Binding, e.Action)
	}
	return km
}

// overrideModes maps each action to the mode of its first default binding.
var overrideModes = func() map[action.Action]action.Mode {
	m := make(map[action.Action]action.Mode)
	for _, e := range defaultEntries {
		if _, ok := m[e.Action]; !ok {
			m[e.Action] = e.Mode
		}
	}
	return m
}()

// OverrideMode returns the mode a keyfile binding for a applies to:
// the mode of the action's first default binding, or Normal.
func OverrideMode(a action.Action) action.Mode {
	if m, ok := overrideModes[a]; ok {
		return m
	}
	return action.Normal
}
