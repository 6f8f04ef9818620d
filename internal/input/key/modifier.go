package key

// Modifier represents the modifier held together with a character key.
type Modifier uint8

// ModNone indicates no modifiers.
const ModNone Modifier = 0

const (
	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// Prefix returns the keyfile prefix for a single modifier ("C-" or "A-").
func (m Modifier) Prefix() string {
	switch m {
	case ModCtrl:
		return "C-"
	case ModAlt:
		return "A-"
	default:
		return ""
	}
}

// String returns "Ctrl", "Alt", "Ctrl+Alt" or "".
func (m Modifier) String() string {
	switch m {
	case ModNone:
		return ""
	case ModCtrl:
		return "Ctrl"
	case ModAlt:
		return "Alt"
	case ModCtrl | ModAlt:
		return "Ctrl+Alt"
	default:
		return "Mod?"
	}
}
