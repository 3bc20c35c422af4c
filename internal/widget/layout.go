// Package widget holds the control layout and the per-control input state
// (focus, dropdown, text cursor, hex entry, drag) of the editor screen.
package widget

import (
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/types"
)

// ID identifies a focusable control. The order is the Tab order.
type ID int

const (
	IDNone ID = iota
	IDUndo
	IDRedo
	IDFont
	IDSize
	IDColor
	IDText
)

// FocusOrder lists the focusable controls in Tab order.
var FocusOrder = []ID{IDUndo, IDRedo, IDFont, IDSize, IDColor, IDText}

func (id ID) String() string {
	switch id {
	case IDUndo:
		return "Undo"
	case IDRedo:
		return "Redo"
	case IDFont:
		return "Font"
	case IDSize:
		return "Size"
	case IDColor:
		return "Color"
	case IDText:
		return "Text"
	default:
		return "None"
	}
}

// Part narrows a hit to a sub-area of a control.
type Part int

const (
	PartBody Part = iota
	PartDecrement
	PartIncrement
	PartItem // Dropdown list entry; Hit.Index is the font index
)

// Hit is the result of a hit test.
type Hit struct {
	ID    ID
	Part  Part
	Index int
}

// Layout constants. Labels in the panel are padded to labelWidth.
const (
	ToolbarHeight = 1
	PanelHeight   = 5 // Title row plus one row per control
	labelWidth    = 8
	fieldWidth    = 18
	minCanvasRows = 3 // Border plus one drawable row
)

// Layout is the screen geometry for one terminal size.
type Layout struct {
	Width, Height int

	Toolbar     types.Rect
	Undo, Redo  types.Rect
	Canvas      types.Rect // Including the border
	CanvasInner types.Rect // Where the label may be placed
	Panel       types.Rect
	Status      types.Rect

	Font      types.Rect
	SizeDec   types.Rect
	SizeValue types.Rect
	SizeInc   types.Rect
	Color     types.Rect
	Text      types.Rect
}

// Compute lays the screen out top to bottom: toolbar, canvas, control panel
// and status bar. Regions that do not fit are left empty.
func Compute(width, height, statusHeight int) Layout {
	l := Layout{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return l
	}

	l.Status = types.Rect{X: 0, Y: height - statusHeight, W: width, H: statusHeight}
	l.Toolbar = types.Rect{X: 0, Y: 0, W: width, H: ToolbarHeight}
	l.Undo = types.Rect{X: 1, Y: 0, W: 8, H: 1}
	l.Redo = types.Rect{X: 10, Y: 0, W: 8, H: 1}

	panelY := l.Status.Y - PanelHeight
	canvasH := panelY - ToolbarHeight
	if canvasH < minCanvasRows {
		// Too short for the panel; give what remains to the canvas.
		panelY = l.Status.Y
		canvasH = panelY - ToolbarHeight
	} else {
		l.Panel = types.Rect{X: 0, Y: panelY, W: width, H: PanelHeight}
		fieldX := labelWidth + 1
		l.Font = types.Rect{X: fieldX, Y: panelY + 1, W: fieldWidth, H: 1}
		l.SizeDec = types.Rect{X: fieldX, Y: panelY + 2, W: 3, H: 1}
		l.SizeValue = types.Rect{X: fieldX + 4, Y: panelY + 2, W: 4, H: 1}
		l.SizeInc = types.Rect{X: fieldX + 9, Y: panelY + 2, W: 3, H: 1}
		l.Color = types.Rect{X: fieldX, Y: panelY + 3, W: fieldWidth, H: 1}
		l.Text = types.Rect{X: fieldX, Y: panelY + 4, W: width - fieldX - 1, H: 1}
	}
	if canvasH > 0 {
		l.Canvas = types.Rect{X: 0, Y: ToolbarHeight, W: width, H: canvasH}
		if canvasH >= minCanvasRows && width > 2 {
			l.CanvasInner = l.Canvas.Inset(1)
		}
	}
	return l
}

// FieldLabelX is the column where panel row captions start.
func (l Layout) FieldLabelX() int { return 1 }

// DropdownItems returns the rectangles of the open font list. The list opens
// upward over the canvas, directly above the dropdown field. When there are
// too few rows above, it slides down over the field itself so every family
// stays on screen.
func (l Layout) DropdownItems() []types.Rect {
	if l.Font.Empty() {
		return nil
	}
	n := len(style.FontFamilies)
	top := l.Font.Y - n
	if top < 0 {
		top = 0
	}
	if top+n > l.Height {
		top = l.Height - n
		if top < 0 {
			top = 0
		}
	}
	rects := make([]types.Rect, 0, n)
	for i := 0; i < n && top+i < l.Height; i++ {
		rects = append(rects, types.Rect{X: l.Font.X, Y: top + i, W: l.Font.W, H: 1})
	}
	return rects
}

// HitTest returns the control under (x, y). An open dropdown list takes
// precedence over whatever it covers.
func (l Layout) HitTest(x, y int, dropdownOpen bool) Hit {
	if dropdownOpen {
		for i, r := range l.DropdownItems() {
			if r.Contains(x, y) {
				return Hit{ID: IDFont, Part: PartItem, Index: i}
			}
		}
	}
	switch {
	case l.Undo.Contains(x, y):
		return Hit{ID: IDUndo}
	case l.Redo.Contains(x, y):
		return Hit{ID: IDRedo}
	case l.Font.Contains(x, y):
		return Hit{ID: IDFont}
	case l.SizeDec.Contains(x, y):
		return Hit{ID: IDSize, Part: PartDecrement}
	case l.SizeInc.Contains(x, y):
		return Hit{ID: IDSize, Part: PartIncrement}
	case l.SizeValue.Contains(x, y):
		return Hit{ID: IDSize}
	case l.Color.Contains(x, y):
		return Hit{ID: IDColor}
	case l.Text.Contains(x, y):
		return Hit{ID: IDText}
	}
	return Hit{ID: IDNone}
}
