// Package keymap resolves input events into editor actions.
//
// The keymap system maps a (mode, key) pair to an action. A Keymap is
// built once at startup from the compiled-in defaults and an optional
// user keyfile, and is read-only afterwards.
//
// # Key Concepts
//
// Keymap: The binding table. At most one action per (mode, key).
//
// Resolver: Turns an event plus the current mode into an action, applying
// the fallback rules for unbound input.
//
// Loader: Builds a Keymap from the defaults and a keyfile path.
//
// # Binding Precedence
//
// Defaults are folded in declaration order, so a later default entry for
// the same (mode, key) replaces an earlier one. Keyfile bindings are
// applied on top of the defaults and always win.
//
// # Keyfile Format
//
// One binding per line, action name first:
//
//	# comment lines start with '#'
//	quit: C-c
//	select_up: k
//	toggle_collapsed: space
//
// A keyfile binding applies to the mode the action is bound in by default
// (insert mode for "erase"), or normal mode when the action has no default
// binding.
//
// # Fallbacks
//
// Unbound plain characters resolve to a Char action carrying the mode and
// the character, so typed text is never dropped. Unbound non-character
// keys resolve to nothing and are logged. Mouse events bypass the table.
//
// # Usage
//
//	km, err := keymap.Load(cfg.KeyFile)
//	if err != nil {
//	    return err
//	}
//	resolver := keymap.NewResolver(km, keymap.WithLogger(logger))
//
//	if act, ok := resolver.Resolve(ev, mode); ok {
//	    // Execute act
//	}
package keymap
