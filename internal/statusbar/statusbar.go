// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the behavior of the status bar. Colors come from the theme.
type Config struct {
	MessageTimeout time.Duration
	Now            func() time.Time // Clock, replaceable in tests
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: 4 * time.Second,
		Now:            time.Now,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	state         style.State
	historyCursor int
	historyLen    int
	mode          string

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &StatusBar{
		config:     config,
		historyLen: 1,
	}
}

// SetStyleInfo updates the label style shown in the status bar.
func (sb *StatusBar) SetStyleInfo(s style.State) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.state = s
}

// SetHistoryInfo updates the history position shown (cursor is zero-based).
func (sb *StatusBar) SetHistoryInfo(cursor, length int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.historyCursor = cursor
	sb.historyLen = length
}

// SetEditorMode updates the displayed mode or focused control.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.config.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Text returns the line that Draw would render now, and whether it is a
// temporary message.
func (sb *StatusBar) Text() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.currentTextLocked()
}

func (sb *StatusBar) currentTextLocked() (string, bool) {
	if !sb.tempMessageTime.IsZero() {
		if sb.config.Now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	return sb.getDefaultDisplayText(), false
}

// getDefaultDisplayText builds the default status line text. Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	modeIndicator := ""
	if sb.mode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.mode)
	}
	s := sb.state
	return fmt.Sprintf("%s %dpx %s -- History: %d/%d%s",
		s.FontFamily, s.FontSize, s.Color, sb.historyCursor+1, sb.historyLen, modeIndicator)
}

// Draw renders the status bar on the last screen line using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	text, isTemp := sb.currentTextLocked()
	sb.mu.Unlock()

	styleName := theme.StyleStatusBar
	if isTemp {
		styleName = theme.StyleStatusBarMessage
		if len(text) > 0 && text[0] == ':' {
			styleName = theme.StyleStatusBarCommand
		}
	}
	st := tcell.StyleDefault
	if activeTheme != nil {
		st = activeTheme.GetStyle(styleName)
	}

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, st)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], st)
		}
		currentX += clusterWidth
	}
}
