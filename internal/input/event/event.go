// Package event defines the input events handed to the keymap resolver.
//
// Events are produced by a terminal driver (see internal/terminal) and
// carry either a key, a mouse interaction, or a description of something
// the resolver does not model.
package event

import (
	"fmt"

	"github.com/dshills/voidkeys/internal/input/key"
)

// Kind identifies the event variant.
type Kind uint8

const (
	// KindUnsupported is an event the resolver does not model
	// (resize, focus, paste markers, unknown escape sequences).
	KindUnsupported Kind = iota
	// KindKey is a key press.
	KindKey
	// KindMouse is a mouse press, release or hold.
	KindMouse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnsupported:
		return "Unsupported"
	case KindKey:
		return "Key"
	case KindMouse:
		return "Mouse"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MouseAction distinguishes the phases of a mouse interaction.
type MouseAction uint8

const (
	// Press is a button going down (including wheel notches).
	Press MouseAction = iota
	// Release is all buttons going up.
	Release
	// Hold is motion while a button stays down.
	Hold
)

// String returns the action name.
func (a MouseAction) String() string {
	switch a {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Hold:
		return "Hold"
	default:
		return fmt.Sprintf("MouseAction(%d)", a)
	}
}

// Button identifies the mouse button of a press.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	WheelUp
	WheelDown
	WheelLeft
	WheelRight
)

var buttonNames = [...]string{
	ButtonLeft:   "Left",
	ButtonRight:  "Right",
	ButtonMiddle: "Middle",
	WheelUp:      "WheelUp",
	WheelDown:    "WheelDown",
	WheelLeft:    "WheelLeft",
	WheelRight:   "WheelRight",
}

// String returns the button name.
func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", b)
}

// Mouse describes a mouse interaction at a zero-based cell position.
// Button is meaningful only for Press.
type Mouse struct {
	Action MouseAction
	Button Button
	X, Y   uint16
}

// Event is a single input event.
type Event struct {
	Kind Kind

	// Key is set for KindKey.
	Key key.Key

	// Mouse is set for KindMouse.
	Mouse Mouse

	// Desc describes a KindUnsupported event for diagnostics.
	Desc string
}

// KeyPress returns a key event.
func KeyPress(k key.Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// MousePress returns a mouse press event.
func MousePress(b Button, x, y uint16) Event {
	return Event{Kind: KindMouse, Mouse: Mouse{Action: Press, Button: b, X: x, Y: y}}
}

// MouseRelease returns a mouse release event.
func MouseRelease(x, y uint16) Event {
	return Event{Kind: KindMouse, Mouse: Mouse{Action: Release, X: x, Y: y}}
}

// MouseHold returns a mouse hold (drag) event.
func MouseHold(x, y uint16) Event {
	return Event{Kind: KindMouse, Mouse: Mouse{Action: Hold, X: x, Y: y}}
}

// Unsupported returns an event the resolver does not model.
func Unsupported(desc string) Event {
	return Event{Kind: KindUnsupported, Desc: desc}
}

// String returns diagnostic text for the event.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return "Key(" + e.Key.String() + ")"
	case KindMouse:
		if e.Mouse.Action == Press {
			return fmt.Sprintf("Mouse(Press(%s, %d, %d))", e.Mouse.Button, e.Mouse.X, e.Mouse.Y)
		}
		return fmt.Sprintf("Mouse(%s(%d, %d))", e.Mouse.Action, e.Mouse.X, e.Mouse.Y)
	default:
		if e.Desc == "" {
			return "Unsupported"
		}
		return "Unsupported(" + e.Desc + ")"
	}
}
