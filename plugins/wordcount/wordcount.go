// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"

	"github.com/bethropolis/stylo/internal/core/history"
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/plugin"
	"github.com/rivo/uniseg"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// WordCount counts the words and characters of the label text.
type WordCount struct {
	api   plugin.EditorAPI
	edits int // Text edits seen since start
}

// New creates a new instance of the WordCount plugin.
func New() plugin.Plugin {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the :count command and tracks text edits.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api

	if err := api.RegisterCommand("count", p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'count' command: %w", err)
	}
	api.SubscribeEvent(event.TypeStyleChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.StyleChangedData); ok && data.Kind == history.ChangeText {
			p.edits++
		}
		return false
	})
	return nil
}

// Shutdown performs cleanup.
func (p *WordCount) Shutdown() error {
	logger.DebugTagf("plugin", "WordCount: %d text edits this session", p.edits)
	return nil
}

// executeWordCount is the function called when the :count command runs.
func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	words, chars := Count(p.api.GetState().Text)
	p.api.SetStatusMessage("Words: %d, Characters: %d", words, chars)
	return nil
}

// Count returns the number of whitespace-separated words and of
// user-perceived characters (grapheme clusters) in text.
func Count(text string) (words, chars int) {
	return len(strings.Fields(text)), uniseg.GraphemeClusterCount(text)
}
