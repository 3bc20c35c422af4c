// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
// It takes arguments (e.g., from user input) and returns an error.
type CommandFunc func(args []string) error

// RawCommandFunc receives everything typed after the command name and one
// separating space, unsplit.
type RawCommandFunc func(rest string) error

// EditorAPI defines the methods plugins and built-in commands can use to
// interact with the label editor. Edits go through the same path as the
// controls, so each one records a history entry.
type EditorAPI interface {
	// --- Label State ---
	GetState() style.State
	SetFontFamily(name string) error
	IncreaseFontSize() error
	DecreaseFontSize() error
	SetColor(hex string) error
	SetText(text string) error

	// --- History ---
	Undo() bool
	Redo() bool
	HistoryInfo() (cursor, length int)

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error
	RegisterRawCommand(name string, cmdFunc RawCommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Clipboard ---
	CopyToClipboard(text string) error
	PasteFromClipboard() (string, error)

	RequestQuit()
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded.
	// Used for setup, subscribing to events, registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
