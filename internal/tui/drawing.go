// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/stylo/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// FillRect paints every cell of r with a blank in st.
func (t *TUI) FillRect(r types.Rect, st tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			t.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// DrawString draws text at (x, y) by grapheme cluster, stopping before maxX.
// It returns the column after the last cluster drawn.
func (t *TUI) DrawString(x, y, maxX int, text string, st tcell.Style) int {
	return t.DrawSpaced(x, y, types.Rect{X: x, Y: y, W: maxX - x, H: 1}, text, 0, st, st)
}

// DrawSpaced draws text with spacing blank cells (in gapStyle) between
// clusters. Cells outside clip are skipped; drawing continues so a label
// partially outside the clip keeps its shape. It returns the column after
// the text.
func (t *TUI) DrawSpaced(x, y int, clip types.Rect, text string, spacing int, st, gapStyle tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	first := true
	for gr.Next() {
		if !first {
			for i := 0; i < spacing; i++ {
				if clip.Contains(x, y) {
					t.screen.SetContent(x, y, ' ', nil, gapStyle)
				}
				x++
			}
		}
		first = false

		runes := gr.Runes()
		width := gr.Width()
		if width == 0 {
			continue
		}
		// Wide clusters draw only when they fit entirely.
		if clip.Contains(x, y) && clip.Contains(x+width-1, y) {
			mainRune := runes[0]
			if mainRune == '\t' {
				mainRune = ' '
			}
			t.screen.SetContent(x, y, mainRune, runes[1:], st)
			for cw := 1; cw < width; cw++ {
				t.screen.SetContent(x+cw, y, ' ', nil, st)
			}
		}
		x += width
		if x >= clip.X+clip.W {
			break
		}
	}
	return x
}

// DrawBox draws a single-line border around r with an optional title on the
// top edge.
func (t *TUI) DrawBox(r types.Rect, st tcell.Style, title string) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		t.screen.SetContent(x, r.Y, tcell.RuneHLine, nil, st)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, st)
	}
	for y := r.Y + 1; y < bottom; y++ {
		t.screen.SetContent(r.X, y, tcell.RuneVLine, nil, st)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, st)
	}
	t.screen.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, st)
	t.screen.SetContent(right, r.Y, tcell.RuneURCorner, nil, st)
	t.screen.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, st)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
	if title != "" {
		t.DrawString(r.X+2, r.Y, right-1, " "+title+" ", st)
	}
}

// ShowCursor places the terminal cursor, hiding it when (x, y) is outside r.
func (t *TUI) ShowCursor(x, y int, r types.Rect) {
	if !r.Contains(x, y) {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, y)
}

// HideCursor hides the terminal cursor.
func (t *TUI) HideCursor() {
	t.screen.HideCursor()
}
