package mode

import (
	"sync"

	"github.com/dshills/voidkeys/internal/input/action"
)

// ChangeCallback is called when the mode changes.
type ChangeCallback func(from, to action.Mode)

// Manager holds the current mode and coordinates transitions.
type Manager struct {
	mu sync.RWMutex

	// current is the active mode.
	current action.Mode

	// switches counts transitions that changed the mode.
	switches int

	callbacks []ChangeCallback
}

// NewManager creates a manager starting in Normal mode.
func NewManager() *Manager {
	return NewManagerIn(action.Normal)
}

// NewManagerIn creates a manager starting in m.
func NewManagerIn(m action.Mode) *Manager {
	return &Manager{current: m}
}

// Current returns the current mode.
func (m *Manager) Current() action.Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Switches returns how many transitions changed the mode.
func (m *Manager) Switches() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.switches
}

// OnChange registers a callback for mode transitions.
func (m *Manager) OnChange(cb ChangeCallback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// Switch changes to mode to. Switching to the current mode is a no-op and
// returns false.
func (m *Manager) Switch(to action.Mode) bool {
	m.mu.Lock()

	from := m.current
	if from == to {
		m.mu.Unlock()
		return false
	}
	m.current = to
	m.switches++

	// Notify outside of lock
	callbacks := make([]ChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
	return true
}

// Apply performs the mode transition carried by a, if any. It reports
// whether the mode changed.
func (m *Manager) Apply(a action.Action) bool {
	if a.Kind != action.SwitchMode {
		return false
	}
	return m.Switch(a.Mode)
}
