package modehandler

import (
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/types"
	"github.com/bethropolis/stylo/internal/widget"
	"github.com/gdamore/tcell/v2"
)

// HandleMouseEvent handles clicks, label drags and the wheel against layout.
// Returns true if a redraw is needed.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse, layout widget.Layout) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	prev := mh.lastButtons
	mh.lastButtons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case buttons&tcell.WheelUp != 0:
		return mh.wheel(x, y, layout, 1)
	case buttons&tcell.WheelDown != 0:
		return mh.wheel(x, y, layout, -1)
	}

	if buttons&tcell.Button1 == 0 {
		if mh.ui.Drag.Active {
			mh.ui.Drag.Stop()
		}
		return false
	}

	p := types.Point{X: x, Y: y}
	if prev&tcell.Button1 != 0 {
		// Motion with the button held.
		dx, dy := mh.ui.Drag.Step(p)
		if dx == 0 && dy == 0 {
			return false
		}
		mh.editor.MoveLabel(dx, dy)
		return true
	}
	return mh.press(p, layout)
}

// press handles a fresh Button1 press.
func (mh *ModeHandler) press(p types.Point, layout widget.Layout) bool {
	if mh.currentMode == ModeCommand {
		mh.currentMode = ModeNormal
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.ResetTemporaryMessage()
	}

	ui := mh.ui
	hit := layout.HitTest(p.X, p.Y, ui.Focused == widget.IDFont && ui.Dropdown.Open)
	if hit.Part == widget.PartItem {
		ui.Dropdown.Close()
		mh.setFont(style.FontFamilies[hit.Index])
		return true
	}

	if hit.ID == widget.IDNone {
		ui.Dropdown.Close()
		if layout.CanvasInner.Contains(p.X, p.Y) && mh.editor.LabelRect().Contains(p.X, p.Y) {
			ui.Drag.Start(p)
		}
		return true
	}

	ui.Focus(hit.ID)
	switch hit.ID {
	case widget.IDUndo:
		mh.undo()
	case widget.IDRedo:
		mh.redo()
	case widget.IDFont:
		ui.Dropdown.Toggle(style.FontIndex(mh.editor.State().FontFamily))
	case widget.IDSize:
		switch hit.Part {
		case widget.PartDecrement:
			mh.editor.DecreaseFontSize()
		case widget.PartIncrement:
			mh.editor.IncreaseFontSize()
		}
	case widget.IDText:
		// Map the cell through the scroll the field was drawn with.
		text := mh.editor.State().Text
		scroll := ui.Text.Scroll(text, layout.Text.W)
		ui.Text.SetColumn(text, p.X-layout.Text.X+scroll)
	}
	return true
}

// wheel steps the control under the pointer: up is +1, down is -1.
func (mh *ModeHandler) wheel(x, y int, layout widget.Layout, dir int) bool {
	ui := mh.ui
	open := ui.Focused == widget.IDFont && ui.Dropdown.Open
	hit := layout.HitTest(x, y, open)
	switch hit.ID {
	case widget.IDFont:
		if open {
			ui.Dropdown.Move(-dir)
			return true
		}
		mh.setFont(widget.CycleFont(mh.editor.State().FontFamily, -dir))
	case widget.IDSize:
		if dir > 0 {
			mh.editor.IncreaseFontSize()
		} else {
			mh.editor.DecreaseFontSize()
		}
	case widget.IDColor:
		next, err := style.ShiftHue(mh.editor.State().Color, float64(dir)*hueStep)
		if err != nil {
			return false
		}
		if err := mh.editor.SetColor(next); err != nil {
			return false
		}
	default:
		return false
	}
	return true
}
