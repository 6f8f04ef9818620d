package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/dshills/voidkeys/internal/input/event"
	"github.com/dshills/voidkeys/internal/input/key"
)

func TestTranslateKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), key.Char('j')},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'K', tcell.ModNone), key.Char('K')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.Char(' ')},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), key.Char('\n')},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), key.Char('\t')},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), key.Named(key.CodeBackspace)},
		{"del byte", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), key.Named(key.CodeBackspace)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), key.Named(key.CodeEsc)},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), key.Named(key.CodeDelete)},
		{"page up", tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), key.Named(key.CodePageUp)},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), key.Named(key.CodePageDown)},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.Named(key.CodeUp)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), key.Named(key.CodeLeft)},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), key.F(1)},
		{"f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone), key.F(12)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 'c', tcell.ModCtrl), key.Ctrl('c')},
		{"ctrl-p", tcell.NewEventKey(tcell.KeyCtrlP, 'p', tcell.ModCtrl), key.Ctrl('p')},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModCtrl), key.Ctrl('x')},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'P', tcell.ModAlt), key.Alt('P')},
	}

	tr := NewTranslator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tr.Translate(tt.ev)
			assert.Equal(t, event.KeyPress(tt.want), got)
		})
	}
}

func TestTranslateUnsupportedKey(t *testing.T) {
	got := NewTranslator().Translate(tcell.NewEventKey(tcell.KeyF20, 0, tcell.ModNone))
	assert.Equal(t, event.KindUnsupported, got.Kind)
}

func TestTranslateMouseSequence(t *testing.T) {
	tr := NewTranslator()

	steps := []struct {
		name string
		ev   *tcell.EventMouse
		want event.Event
	}{
		{"motion without buttons", tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone), event.Unsupported("mouse motion 1,1")},
		{"left press", tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone), event.MousePress(event.ButtonLeft, 10, 4)},
		{"drag", tcell.NewEventMouse(11, 4, tcell.Button1, tcell.ModNone), event.MouseHold(11, 4)},
		{"drag again", tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone), event.MouseHold(12, 5)},
		{"release", tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone), event.MouseRelease(12, 5)},
		{"right press", tcell.NewEventMouse(3, 2, tcell.Button2, tcell.ModNone), event.MousePress(event.ButtonRight, 3, 2)},
		{"add middle", tcell.NewEventMouse(3, 2, tcell.Button2|tcell.Button3, tcell.ModNone), event.MousePress(event.ButtonMiddle, 3, 2)},
		{"release all", tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone), event.MouseRelease(3, 2)},
		{"wheel", tcell.NewEventMouse(0, 7, tcell.WheelDown, tcell.ModNone), event.MousePress(event.WheelDown, 0, 7)},
	}

	for _, st := range steps {
		got := tr.Translate(st.ev)
		assert.Equal(t, st.want, got, st.name)
	}
}

func TestTranslateOtherEvents(t *testing.T) {
	tr := NewTranslator()

	got := tr.Translate(tcell.NewEventResize(80, 24))
	assert.Equal(t, event.Unsupported("resize 80x24"), got)

	got = tr.Translate(tcell.NewEventInterrupt(nil))
	assert.Equal(t, event.KindUnsupported, got.Kind)
	assert.Equal(t, "*tcell.EventInterrupt", got.Desc)
}

func TestClampCoord(t *testing.T) {
	assert.Equal(t, uint16(0), clampCoord(-3))
	assert.Equal(t, uint16(42), clampCoord(42))
	assert.Equal(t, uint16(65535), clampCoord(1<<20))
}
