// Package render composes the editor screen: toolbar, canvas with the styled
// label, and the control panel.
package render

import (
	"fmt"

	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/theme"
	"github.com/bethropolis/stylo/internal/tui"
	"github.com/bethropolis/stylo/internal/types"
	"github.com/bethropolis/stylo/internal/widget"
	"github.com/gdamore/tcell/v2"
)

// View is everything one frame needs. It is a snapshot, so drawing never
// holds the editor lock.
type View struct {
	Layout   widget.Layout
	UI       *widget.State
	State    style.State
	LabelPos types.Point
	CanUndo  bool
	CanRedo  bool
}

// Frame draws all components except the status bar.
func Frame(t *tui.TUI, activeTheme *theme.Theme, v View) {
	if activeTheme == nil {
		th := theme.DevComfortDark
		activeTheme = &th
	}
	if v.UI == nil {
		v.UI = widget.NewState()
	}
	l := v.Layout
	t.FillRect(types.Rect{X: 0, Y: 0, W: l.Width, H: l.Height}, activeTheme.GetStyle(theme.StyleDefault))

	drawToolbar(t, activeTheme, v)
	drawCanvas(t, activeTheme, v)
	drawPanel(t, activeTheme, v)
	if v.UI.Focused == widget.IDFont && v.UI.Dropdown.Open {
		drawDropdown(t, activeTheme, v)
	}
	placeCursor(t, v)
}

func drawToolbar(t *tui.TUI, th *theme.Theme, v View) {
	l := v.Layout
	if l.Toolbar.Empty() {
		return
	}
	t.FillRect(l.Toolbar, th.GetStyle(theme.StyleToolbar))
	drawButton(t, th, l.Undo, "Undo", v.CanUndo, v.UI.Focused == widget.IDUndo)
	drawButton(t, th, l.Redo, "Redo", v.CanRedo, v.UI.Focused == widget.IDRedo)

	title := "stylo"
	x := l.Toolbar.X + l.Toolbar.W - len(title) - 1
	if x > l.Redo.X+l.Redo.W {
		t.DrawString(x, l.Toolbar.Y, l.Toolbar.X+l.Toolbar.W, title, th.GetStyle(theme.StylePanelTitle))
	}
}

func drawButton(t *tui.TUI, th *theme.Theme, r types.Rect, caption string, enabled, focused bool) {
	name := theme.StyleButton
	switch {
	case focused:
		name = theme.StyleButtonFocused
	case !enabled:
		name = theme.StyleButtonDisabled
	}
	t.DrawString(r.X, r.Y, r.X+r.W, fmt.Sprintf("[ %s ]", caption), th.GetStyle(name))
}

func drawCanvas(t *tui.TUI, th *theme.Theme, v View) {
	l := v.Layout
	if l.Canvas.Empty() {
		return
	}
	canvasStyle := th.GetStyle(theme.StyleCanvas)
	t.FillRect(l.Canvas, canvasStyle)
	t.DrawBox(l.Canvas, th.GetStyle(theme.StyleCanvasBorder), "Canvas")
	if l.CanvasInner.Empty() {
		return
	}
	DrawLabel(t, l.CanvasInner, v.LabelPos, v.State, canvasStyle)
}

// DrawLabel draws the label text at pos inside clip using the state's color,
// font attributes and letter spacing.
func DrawLabel(t *tui.TUI, clip types.Rect, pos types.Point, s style.State, canvasStyle tcell.Style) {
	t.DrawSpaced(pos.X, pos.Y, clip, s.Text, style.LetterSpacing(s.FontSize), LabelStyle(canvasStyle, s), canvasStyle)
}

// LabelStyle derives the label's cell style from the canvas style: the color
// becomes the foreground and the font family selects text attributes.
func LabelStyle(canvasStyle tcell.Style, s style.State) tcell.Style {
	st := canvasStyle.Foreground(style.TermColor(s.Color))
	switch s.FontFamily {
	case "Fantasy":
		st = st.Bold(true)
	case "Times New Roman":
		st = st.Italic(true)
	case "Verdana":
		st = st.Bold(true).Italic(true)
	case "cursive":
		st = st.Italic(true).Underline(true)
	case "Courier New":
		st = st.Dim(true)
	}
	return st
}

func controlStyle(th *theme.Theme, v View, id widget.ID) tcell.Style {
	if v.UI.Focused == id {
		return th.GetStyle(theme.StyleControlFocused)
	}
	return th.GetStyle(theme.StyleControl)
}

func drawPanel(t *tui.TUI, th *theme.Theme, v View) {
	l := v.Layout
	if l.Panel.Empty() {
		return
	}
	panelStyle := th.GetStyle(theme.StylePanel)
	t.FillRect(l.Panel, panelStyle)
	t.DrawString(l.FieldLabelX(), l.Panel.Y, l.Panel.X+l.Panel.W, "Style", th.GetStyle(theme.StylePanelTitle))

	maxX := l.Panel.X + l.Panel.W
	caption := func(r types.Rect, text string) {
		t.DrawString(l.FieldLabelX(), r.Y, r.X-1, text, panelStyle)
	}

	// Font dropdown
	caption(l.Font, "Font")
	fontStyle := controlStyle(th, v, widget.IDFont)
	t.FillRect(l.Font, fontStyle)
	t.DrawString(l.Font.X+1, l.Font.Y, l.Font.X+l.Font.W-2, v.State.FontFamily, fontStyle)
	t.DrawString(l.Font.X+l.Font.W-2, l.Font.Y, l.Font.X+l.Font.W, "▾", fontStyle)

	// Size stepper
	caption(l.SizeDec, "Size")
	sizeStyle := controlStyle(th, v, widget.IDSize)
	buttonStyle := th.GetStyle(theme.StyleButton)
	decStyle, incStyle := buttonStyle, buttonStyle
	if v.State.FontSize <= style.MinFontSize {
		decStyle = th.GetStyle(theme.StyleButtonDisabled)
	}
	if v.State.FontSize >= style.MaxFontSize {
		incStyle = th.GetStyle(theme.StyleButtonDisabled)
	}
	t.DrawString(l.SizeDec.X, l.SizeDec.Y, maxX, "[-]", decStyle)
	t.FillRect(l.SizeValue, sizeStyle)
	t.DrawString(l.SizeValue.X, l.SizeValue.Y, maxX, fmt.Sprintf("%4d", v.State.FontSize), sizeStyle)
	t.DrawString(l.SizeInc.X, l.SizeInc.Y, maxX, "[+]", incStyle)
	t.DrawString(l.SizeInc.X+l.SizeInc.W+1, l.SizeInc.Y, maxX, "px", panelStyle)

	// Color picker: swatch, hex value (or entry) and key hints
	caption(l.Color, "Color")
	colorStyle := controlStyle(th, v, widget.IDColor)
	t.FillRect(l.Color, colorStyle)
	swatch := panelStyle.Foreground(style.TermColor(v.State.Color))
	t.DrawString(l.Color.X, l.Color.Y, maxX, "██", swatch)
	hex := v.State.Color
	if v.UI.Hex.Active {
		hex = v.UI.Hex.Buffer
	}
	t.DrawString(l.Color.X+3, l.Color.Y, l.Color.X+l.Color.W, hex, colorStyle)
	if v.UI.Focused == widget.IDColor {
		hint := "←→ hue  ↑↓ shade  # hex"
		if v.UI.Hex.Active {
			hint = "Enter apply  Esc cancel"
		}
		t.DrawString(l.Color.X+l.Color.W+1, l.Color.Y, maxX, hint, panelStyle)
	}

	// Text input
	caption(l.Text, "Text")
	textStyle := controlStyle(th, v, widget.IDText)
	t.FillRect(l.Text, textStyle)
	offset := textScroll(v)
	t.DrawSpaced(l.Text.X-offset, l.Text.Y, l.Text, v.State.Text, 0, textStyle, textStyle)
}

func textScroll(v View) int {
	return v.UI.Text.Scroll(v.State.Text, v.Layout.Text.W)
}

func drawDropdown(t *tui.TUI, th *theme.Theme, v View) {
	items := v.Layout.DropdownItems()
	for i, r := range items {
		name := theme.StyleDropdownItem
		if i == v.UI.Dropdown.Highlight {
			name = theme.StyleDropdownSelected
		}
		st := th.GetStyle(name)
		t.FillRect(r, st)
		marker := " "
		if style.FontFamilies[i] == v.State.FontFamily {
			marker = "•"
		}
		t.DrawString(r.X, r.Y, r.X+r.W, marker+style.FontFamilies[i], st)
	}
}

func placeCursor(t *tui.TUI, v View) {
	l := v.Layout
	switch {
	case v.UI.Focused == widget.IDText && !l.Text.Empty():
		x := l.Text.X + v.UI.Text.CursorColumn(v.State.Text) - textScroll(v)
		t.ShowCursor(x, l.Text.Y, l.Text)
	case v.UI.Focused == widget.IDColor && v.UI.Hex.Active && !l.Color.Empty():
		t.ShowCursor(l.Color.X+3+len(v.UI.Hex.Buffer), l.Color.Y, l.Color)
	default:
		t.HideCursor()
	}
}
