package keymap

import (
	"github.com/rs/zerolog"

	"github.com/dshills/voidkeys/internal/input/action"
	"github.com/dshills/voidkeys/internal/input/event"
)

// Resolver turns input events into actions using a Keymap.
type Resolver struct {
	keymap *Keymap
	log    zerolog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger that receives diagnostics about unbound keys
// and unknown events. The default discards them.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver creates a resolver over km.
func NewResolver(km *Keymap, opts ...Option) *Resolver {
	r := &Resolver{
		keymap: km,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Keymap returns the table the resolver reads from.
func (r *Resolver) Keymap() *Keymap {
	return r.keymap
}

// Resolve returns the action ev represents in mode m.
//
// Plain characters fall back to a Char action when unbound. Mouse events
// never consult the table. Unbound non-character keys and unsupported
// events yield false.
func (r *Resolver) Resolve(ev event.Event, m action.Mode) (action.Action, bool) {
	switch ev.Kind {
	case event.KindKey:
		if a, ok := r.keymap.Lookup(m, ev.Key); ok {
			return a, true
		}
		if ev.Key.IsChar() {
			return action.CharIn(m, ev.Key.Rune), true
		}
		r.log.Warn().
			Stringer("mode", m).
			Stringer("key", ev.Key).
			Msg("unbound key event")
		return action.Action{}, false

	case event.KindMouse:
		return resolveMouse(ev.Mouse)

	default:
		r.log.Warn().
			Stringer("event", ev).
			Msg("unknown event received")
		return action.Action{}, false
	}
}

func resolveMouse(ms event.Mouse) (action.Action, bool) {
	switch ms.Action {
	case event.Press:
		if ms.Button == event.ButtonRight {
			return action.RightClickAt(ms.X, ms.Y), true
		}
		return action.LeftClickAt(ms.X, ms.Y), true
	case event.Release:
		return action.ReleaseAt(ms.X, ms.Y), true
	default:
		return action.Action{}, false
	}
}
