// Package clipboard copies label text to and from the system clipboard, with
// an in-process fallback when no system clipboard is available.
package clipboard

import (
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/stylo/internal/logger"
)

// Clipboard holds the internal copy and optionally mirrors the system clipboard.
type Clipboard struct {
	mu       sync.Mutex
	system   bool
	internal string
}

// New creates a clipboard. With useSystem it reads and writes the system
// clipboard, falling back to the internal copy on errors.
func New(useSystem bool) *Clipboard {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("Clipboard: System clipboard unsupported, using internal clipboard")
		useSystem = false
	}
	return &Clipboard{system: useSystem}
}

// Copy stores text. The internal copy is always updated.
func (c *Clipboard) Copy(text string) error {
	c.mu.Lock()
	c.internal = text
	system := c.system
	c.mu.Unlock()

	if !system {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warnf("Clipboard: System write failed, kept internal copy: %v", err)
		return err
	}
	logger.DebugTagf("clipboard", "Clipboard: Copied %d bytes to system clipboard", len(text))
	return nil
}

// Paste returns the clipboard contents as a single line: line breaks become
// spaces, since the label is one line.
func (c *Clipboard) Paste() (string, error) {
	c.mu.Lock()
	text := c.internal
	system := c.system
	c.mu.Unlock()

	if system {
		sysText, err := clipboard.ReadAll()
		if err != nil {
			logger.Warnf("Clipboard: System read failed, using internal copy: %v", err)
		} else {
			text = sysText
		}
	}
	return singleLine(text), nil
}

func singleLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
}
