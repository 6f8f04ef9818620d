package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/voidkeys/internal/input/event"
)

// Screen is a tcell screen that yields input events and keeps a
// scrolling list of text lines.
type Screen struct {
	screen     tcell.Screen
	translator *Translator

	mu    sync.Mutex
	lines []string
}

// NewScreen wraps s. Use Open for a real terminal.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen:     s,
		translator: NewTranslator(),
	}
}

// Open initializes the controlling terminal with mouse reporting enabled.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	scr := NewScreen(s)
	if err := scr.Init(); err != nil {
		return nil, err
	}
	return scr, nil
}

// Init initializes the underlying screen.
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.screen.EnablePaste()
	s.screen.Clear()
	return nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Next blocks for the next terminal event. It returns false once the
// screen has been closed.
func (s *Screen) Next() (event.Event, bool) {
	ev := s.screen.PollEvent()
	if ev == nil {
		return event.Event{}, false
	}
	if _, ok := ev.(*tcell.EventResize); ok {
		s.screen.Sync()
		s.redraw()
	}
	return s.translator.Translate(ev), true
}

// Println appends a line and redraws. Old lines scroll off the top.
func (s *Screen) Println(line string) {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	s.redraw()
}

func (s *Screen) redraw() {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	if h <= 0 {
		return
	}
	if len(s.lines) > h {
		s.lines = s.lines[len(s.lines)-h:]
	}

	s.screen.Clear()
	for y, line := range s.lines {
		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			s.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	s.screen.Show()
}
