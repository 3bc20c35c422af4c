// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/bethropolis/stylo/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes a TUI on the real terminal.
func New(activeTheme *theme.Theme) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, activeTheme)
}

// NewWithScreen initializes the given screen (a tcell.SimulationScreen in tests)
// with mouse support and the theme's default style.
func NewWithScreen(s tcell.Screen, activeTheme *theme.Theme) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.EnableMouse(tcell.MouseMotionEvents)
	t := &TUI{screen: s}
	t.ApplyTheme(activeTheme)
	return t, nil
}

// ApplyTheme sets the screen's base style from the theme's Default.
func (t *TUI) ApplyTheme(activeTheme *theme.Theme) {
	if activeTheme == nil {
		return
	}
	t.screen.SetStyle(activeTheme.GetStyle(theme.StyleDefault))
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws the whole terminal, used after resizes.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
