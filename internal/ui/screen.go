// Package ui provides terminal rendering using tcell.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
	quit   chan struct{}
	once   sync.Once
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an already constructed tcell screen, such as a
// simulation screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, quit: make(chan struct{})}, nil
}

// Close finalizes the screen and restores terminal state. It is safe to
// call more than once.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// Events starts delivering terminal events on the returned channel until
// the screen is closed. Call it once.
func (s *Screen) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 8)
	go func() {
		defer close(ch)
		for {
			// PollEvent returns nil once the screen is finalized
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-s.quit:
				return
			}
		}
	}()
	return ch
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
