package modehandler

import (
	"github.com/bethropolis/stylo/internal/input"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/widget"
)

// Color picker steps.
const (
	hueStep   = 15.0 // degrees
	valueStep = 0.1
)

// handleActionNormal handles global actions, then hands the rest to the
// focused control.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	ui := mh.ui
	switch actionEvent.Action {
	case input.ActionForceQuit:
		mh.quit()
		return false

	case input.ActionQuit:
		// Esc closes whatever is open before it quits.
		switch {
		case ui.Dropdown.Open:
			ui.Dropdown.Close()
			return true
		case ui.Hex.Active:
			ui.Hex.Cancel()
			return true
		}
		mh.quit()
		return false

	case input.ActionFocusNext:
		ui.FocusNext(1)
		return true
	case input.ActionFocusPrev:
		ui.FocusNext(-1)
		return true

	case input.ActionEnterCommandMode:
		if ui.Focused == widget.IDText {
			// ':' is ordinary text inside the text field.
			return mh.executeAction(input.ActionEvent{Action: input.ActionInsertRune, Rune: actionEvent.Rune})
		}
		mh.enterCommandMode()
		return true

	case input.ActionUnknown:
		return false
	}
	return mh.executeAction(actionEvent)
}

// executeAction applies an action to the focused control.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	switch mh.ui.Focused {
	case widget.IDUndo:
		if actionEvent.Action == input.ActionActivate {
			mh.undo()
			return true
		}
	case widget.IDRedo:
		if actionEvent.Action == input.ActionActivate {
			mh.redo()
			return true
		}
	case widget.IDFont:
		return mh.fontAction(actionEvent)
	case widget.IDSize:
		return mh.sizeAction(actionEvent)
	case widget.IDColor:
		return mh.colorAction(actionEvent)
	case widget.IDText:
		return mh.textAction(actionEvent)
	}
	return false
}

func (mh *ModeHandler) undo() {
	if !mh.editor.Undo() {
		mh.statusBar.SetTemporaryMessage("Already at oldest change")
	}
}

func (mh *ModeHandler) redo() {
	if !mh.editor.Redo() {
		mh.statusBar.SetTemporaryMessage("Already at newest change")
	}
}

func (mh *ModeHandler) setFont(name string) {
	if err := mh.editor.SetFontFamily(name); err != nil {
		mh.statusBar.SetTemporaryMessage("Font: %v", err)
	}
}

func (mh *ModeHandler) fontAction(actionEvent input.ActionEvent) bool {
	dd := &mh.ui.Dropdown
	current := mh.editor.State().FontFamily
	if dd.Open {
		switch actionEvent.Action {
		case input.ActionMoveUp, input.ActionMoveLeft:
			dd.Move(-1)
		case input.ActionMoveDown, input.ActionMoveRight:
			dd.Move(1)
		case input.ActionMoveHome:
			dd.Highlight = 0
		case input.ActionMoveEnd:
			dd.Highlight = len(style.FontFamilies) - 1
		case input.ActionActivate:
			dd.Close()
			mh.setFont(dd.Selected())
		default:
			return false
		}
		return true
	}

	switch actionEvent.Action {
	case input.ActionActivate:
		dd.Toggle(style.FontIndex(current))
	case input.ActionMoveUp, input.ActionMoveLeft:
		mh.setFont(widget.CycleFont(current, -1))
	case input.ActionMoveDown, input.ActionMoveRight:
		mh.setFont(widget.CycleFont(current, 1))
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) sizeAction(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionMoveUp, input.ActionMoveRight, input.ActionActivate:
		mh.editor.IncreaseFontSize()
	case input.ActionMoveDown, input.ActionMoveLeft:
		mh.editor.DecreaseFontSize()
	case input.ActionInsertRune:
		switch actionEvent.Rune {
		case '+', '=':
			mh.editor.IncreaseFontSize()
		case '-', '_':
			mh.editor.DecreaseFontSize()
		default:
			return false
		}
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) colorAction(actionEvent input.ActionEvent) bool {
	hex := &mh.ui.Hex
	if hex.Active {
		switch actionEvent.Action {
		case input.ActionInsertRune:
			return hex.Insert(actionEvent.Rune)
		case input.ActionDeleteCharBackward:
			hex.Backspace()
		case input.ActionActivate:
			value := hex.Commit()
			if err := mh.editor.SetColor(value); err != nil {
				mh.statusBar.SetTemporaryMessage("Color: %v", err)
			}
		default:
			return false
		}
		return true
	}

	current := mh.editor.State().Color
	var next string
	var err error
	switch actionEvent.Action {
	case input.ActionMoveLeft:
		next, err = style.ShiftHue(current, -hueStep)
	case input.ActionMoveRight:
		next, err = style.ShiftHue(current, hueStep)
	case input.ActionMoveUp:
		next, err = style.ShiftValue(current, valueStep)
	case input.ActionMoveDown:
		next, err = style.ShiftValue(current, -valueStep)
	case input.ActionActivate:
		hex.Begin("#")
		return true
	case input.ActionInsertRune:
		if !widget.IsHexStart(actionEvent.Rune) {
			return false
		}
		hex.Begin(string(actionEvent.Rune))
		return true
	default:
		return false
	}
	if err != nil {
		logger.Warnf("ModeHandler: color step failed: %v", err)
		return false
	}
	if next == current {
		return false
	}
	if err := mh.editor.SetColor(next); err != nil {
		mh.statusBar.SetTemporaryMessage("Color: %v", err)
	}
	return true
}

func (mh *ModeHandler) textAction(actionEvent input.ActionEvent) bool {
	field := &mh.ui.Text
	text := mh.editor.State().Text
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.editor.SetText(field.Insert(text, string(actionEvent.Rune)))
	case input.ActionDeleteCharBackward:
		next, changed := field.Backspace(text)
		if !changed {
			return false
		}
		mh.editor.SetText(next)
	case input.ActionDeleteCharForward:
		next, changed := field.Delete(text)
		if !changed {
			return false
		}
		mh.editor.SetText(next)
	case input.ActionMoveLeft:
		field.Move(text, -1)
	case input.ActionMoveRight:
		field.Move(text, 1)
	case input.ActionMoveHome:
		field.Home()
	case input.ActionMoveEnd:
		field.End(text)
	default:
		return false
	}
	return true
}
