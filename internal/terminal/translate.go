// Package terminal adapts tcell terminal events to the input event model.
package terminal

import (
	"fmt"
	"math"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/voidkeys/internal/input/event"
	"github.com/dshills/voidkeys/internal/input/key"
)

const heldButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Translator converts tcell events into input events.
//
// tcell reports the full button mask on every mouse event, so the
// translator remembers which buttons were down to tell a press from a
// drag or a release. Use one Translator per screen.
type Translator struct {
	held tcell.ButtonMask
}

// NewTranslator creates a translator with no buttons held.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate converts ev. Events without a counterpart in the input model
// come back as event.KindUnsupported.
func (t *Translator) Translate(ev tcell.Event) event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := convertKey(e)
		if !ok {
			return event.Unsupported(fmt.Sprintf("key %s", e.Name()))
		}
		return event.KeyPress(k)

	case *tcell.EventMouse:
		return t.convertMouse(e)

	case *tcell.EventResize:
		w, h := e.Size()
		return event.Unsupported(fmt.Sprintf("resize %dx%d", w, h))

	case *tcell.EventPaste:
		if e.Start() {
			return event.Unsupported("paste start")
		}
		return event.Unsupported("paste end")

	case *tcell.EventFocus:
		if e.Focused {
			return event.Unsupported("focus gained")
		}
		return event.Unsupported("focus lost")

	default:
		return event.Unsupported(fmt.Sprintf("%T", ev))
	}
}

// convertKey maps a tcell key to a key.Key following raw terminal byte
// conventions: Enter and Tab are characters, DEL is Backspace and
// Ctrl+letter is a Ctrl key with the lowercase letter.
func convertKey(e *tcell.EventKey) (key.Key, bool) {
	k := e.Key()
	switch k {
	case tcell.KeyRune:
		r := e.Rune()
		mod := e.Modifiers()
		switch {
		case mod&tcell.ModAlt != 0:
			return key.Alt(r), true
		case mod&tcell.ModCtrl != 0:
			return key.Ctrl(unicode.ToLower(r)), true
		default:
			return key.Char(r), true
		}
	case tcell.KeyEnter:
		return key.Char('\n'), true
	case tcell.KeyTab:
		return key.Char('\t'), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Named(key.CodeBackspace), true
	case tcell.KeyEscape:
		return key.Named(key.CodeEsc), true
	case tcell.KeyDelete:
		return key.Named(key.CodeDelete), true
	case tcell.KeyInsert:
		return key.Named(key.CodeInsert), true
	case tcell.KeyHome:
		return key.Named(key.CodeHome), true
	case tcell.KeyEnd:
		return key.Named(key.CodeEnd), true
	case tcell.KeyPgUp:
		return key.Named(key.CodePageUp), true
	case tcell.KeyPgDn:
		return key.Named(key.CodePageDown), true
	case tcell.KeyUp:
		return key.Named(key.CodeUp), true
	case tcell.KeyDown:
		return key.Named(key.CodeDown), true
	case tcell.KeyLeft:
		return key.Named(key.CodeLeft), true
	case tcell.KeyRight:
		return key.Named(key.CodeRight), true
	case tcell.KeyBacktab:
		return key.Named(key.CodeBackTab), true
	case tcell.KeyCtrlSpace, tcell.KeyNUL:
		return key.Named(key.CodeNull), true
	}

	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return key.Ctrl(rune('a' + (k - tcell.KeyCtrlA))), true
	case k >= tcell.KeyCtrlBackslash && k <= tcell.KeyCtrlUnderscore:
		return key.Ctrl(rune('\\' + (k - tcell.KeyCtrlBackslash))), true
	case k >= tcell.KeyF1 && k <= tcell.KeyF12:
		return key.F(int(k-tcell.KeyF1) + 1), true
	}

	return key.Key{}, false
}

func (t *Translator) convertMouse(e *tcell.EventMouse) event.Event {
	x, y := e.Position()
	cx, cy := clampCoord(x), clampCoord(y)
	btns := e.Buttons()

	// Wheel notches are momentary presses and do not change held state
	switch {
	case btns&tcell.WheelUp != 0:
		return event.MousePress(event.WheelUp, cx, cy)
	case btns&tcell.WheelDown != 0:
		return event.MousePress(event.WheelDown, cx, cy)
	case btns&tcell.WheelLeft != 0:
		return event.MousePress(event.WheelLeft, cx, cy)
	case btns&tcell.WheelRight != 0:
		return event.MousePress(event.WheelRight, cx, cy)
	}

	pressed := btns & heldButtons
	prev := t.held
	t.held = pressed

	if pressed == 0 {
		if prev == 0 {
			return event.Unsupported(fmt.Sprintf("mouse motion %d,%d", cx, cy))
		}
		return event.MouseRelease(cx, cy)
	}

	if added := pressed &^ prev; added != 0 {
		return event.MousePress(convertButton(added), cx, cy)
	}
	return event.MouseHold(cx, cy)
}

// convertButton picks the button for a press. Button2 is the secondary
// (right) button in tcell.
func convertButton(b tcell.ButtonMask) event.Button {
	switch {
	case b&tcell.Button1 != 0:
		return event.ButtonLeft
	case b&tcell.Button2 != 0:
		return event.ButtonRight
	default:
		return event.ButtonMiddle
	}
}

func clampCoord(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
