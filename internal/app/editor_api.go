// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/stylo/internal/commands"
	"github.com/bethropolis/stylo/internal/config"
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/plugin"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

var _ commands.ThemeAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App // Reference back to the main application
}

// newEditorAPI creates a new API adapter instance.
func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Label State ---

func (api *appEditorAPI) GetState() style.State {
	return api.app.editor.State()
}

func (api *appEditorAPI) SetFontFamily(name string) error {
	return api.app.editor.SetFontFamily(name)
}

func (api *appEditorAPI) IncreaseFontSize() error {
	return api.app.editor.IncreaseFontSize()
}

func (api *appEditorAPI) DecreaseFontSize() error {
	return api.app.editor.DecreaseFontSize()
}

func (api *appEditorAPI) SetColor(hex string) error {
	return api.app.editor.SetColor(hex)
}

// SetText replaces the label text. The text field cursor is parked at the
// end so it stays valid for the new content.
func (api *appEditorAPI) SetText(text string) error {
	if err := api.app.editor.SetText(text); err != nil {
		return err
	}
	api.app.ui.Text.End(api.app.editor.State().Text)
	return nil
}

// --- History ---

func (api *appEditorAPI) Undo() bool {
	return api.app.editor.Undo()
}

func (api *appEditorAPI) Redo() bool {
	return api.app.editor.Redo()
}

func (api *appEditorAPI) HistoryInfo() (cursor, length int) {
	h := api.app.editor.History()
	return h.Cursor(), h.Len()
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app == nil || api.app.GetModeHandler() == nil {
		// This would be a programming error during setup
		logger.Errorf("appEditorAPI cannot register command '%s', app or modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

func (api *appEditorAPI) RegisterRawCommand(name string, cmdFunc plugin.RawCommandFunc) error {
	if api.app == nil || api.app.GetModeHandler() == nil {
		logger.Errorf("appEditorAPI cannot register command '%s', app or modeHandler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.GetModeHandler().RegisterRawCommand(name, cmdFunc)
}

// --- Status Bar ---

// SetStatusMessage shows a temporary message and schedules a redraw for when
// it expires.
func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
	api.app.statusExpiry.Debounce(config.MessageTimeout, api.app.requestRedraw)
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.GetThemeManager().Current().GetStyle(styleName)
}

// SetTheme sets the active theme by name
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.SetTheme(name); err != nil {
		return err
	}
	logger.Debugf("Theme changed to '%s', redraw requested", name)
	return nil
}

// GetTheme returns the current active theme
func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.GetThemeManager().Current()
}

// ListThemes returns a list of all available theme names
func (api *appEditorAPI) ListThemes() []string {
	return api.app.GetThemeManager().ListThemes()
}

// --- Clipboard ---

func (api *appEditorAPI) CopyToClipboard(text string) error {
	return api.app.clipboard.Copy(text)
}

func (api *appEditorAPI) PasteFromClipboard() (string, error) {
	return api.app.clipboard.Paste()
}

// RequestQuit signals the application to quit.
func (api *appEditorAPI) RequestQuit() {
	logger.Debugf("API: Quit requested.")
	api.app.requestQuit()
}
