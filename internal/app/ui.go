package app

import (
	"github.com/bethropolis/stylo/internal/modehandler"
	"github.com/bethropolis/stylo/internal/render"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.uiMu.Lock()
	defer a.uiMu.Unlock()

	a.updateStatusBarContent()

	activeTheme := a.themeManager.Current()
	state := a.editor.State()
	a.ui.Text.Clamp(state.Text) // Undo may have shortened the text
	view := render.View{
		Layout:   a.layout,
		UI:       a.ui,
		State:    state,
		LabelPos: a.editor.LabelPosition(),
		CanUndo:  a.editor.CanUndo(),
		CanRedo:  a.editor.CanRedo(),
	}

	width, height := a.tuiManager.Size()
	a.tuiManager.Clear()
	render.Frame(a.tuiManager, activeTheme, view)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height, activeTheme)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
// Caller holds uiMu.
func (a *App) updateStatusBarContent() {
	h := a.editor.History()
	a.statusBar.SetStyleInfo(a.editor.State())
	a.statusBar.SetHistoryInfo(h.Cursor(), h.Len())
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentModeString())

	// In command mode the status line shows the command being typed.
	if a.modeHandler.GetCurrentMode() == modehandler.ModeCommand {
		a.statusBar.SetTemporaryMessage(":%s", a.modeHandler.GetCommandBuffer())
	}
}
