package widget

import (
	"strings"

	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/types"
	"github.com/rivo/uniseg"
)

// State is the transient UI state. It is owned by the event loop goroutine
// and not safe for concurrent use.
type State struct {
	Focused  ID
	Dropdown Dropdown
	Text     TextField
	Hex      HexEntry
	Drag     Drag
}

// NewState focuses the text field, matching a freshly opened form.
func NewState() *State {
	return &State{Focused: IDText}
}

// FocusNext moves focus by delta along FocusOrder, wrapping around. Any open
// popup or pending hex entry is closed.
func (s *State) FocusNext(delta int) ID {
	idx := 0
	for i, id := range FocusOrder {
		if id == s.Focused {
			idx = i
			break
		}
	}
	n := len(FocusOrder)
	idx = ((idx+delta)%n + n) % n
	s.Focus(FocusOrder[idx])
	return s.Focused
}

// Focus focuses id, closing the dropdown and abandoning hex entry.
func (s *State) Focus(id ID) {
	if id != s.Focused {
		s.Dropdown.Close()
		s.Hex.Cancel()
	}
	s.Focused = id
}

// Dropdown is the font list popup.
type Dropdown struct {
	Open      bool
	Highlight int
}

// Toggle opens the list with current highlighted, or closes it.
func (d *Dropdown) Toggle(current int) {
	if d.Open {
		d.Close()
		return
	}
	d.Open = true
	if current < 0 {
		current = 0
	}
	d.Highlight = current
}

// Close hides the list.
func (d *Dropdown) Close() {
	d.Open = false
}

// Move shifts the highlight by delta, wrapping around the font list.
func (d *Dropdown) Move(delta int) {
	n := len(style.FontFamilies)
	d.Highlight = ((d.Highlight+delta)%n + n) % n
}

// Selected returns the highlighted family.
func (d *Dropdown) Selected() string {
	return style.FontFamilies[d.Highlight]
}

// CycleFont returns the family delta positions away from current, wrapping.
func CycleFont(current string, delta int) string {
	n := len(style.FontFamilies)
	idx := style.FontIndex(current)
	if idx < 0 {
		idx = 0
	}
	return style.FontFamilies[((idx+delta)%n+n)%n]
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// TextField tracks the caret of the label text input. Cursor counts grapheme
// clusters, so editing never splits a character.
type TextField struct {
	Cursor int
}

// Clamp keeps the cursor within text; text may change under the field via undo.
func (f *TextField) Clamp(text string) {
	n := uniseg.GraphemeClusterCount(text)
	if f.Cursor > n {
		f.Cursor = n
	}
	if f.Cursor < 0 {
		f.Cursor = 0
	}
}

// Insert returns text with s inserted at the cursor and advances the cursor.
func (f *TextField) Insert(text, s string) string {
	f.Clamp(text)
	g := graphemes(text)
	head := strings.Join(g[:f.Cursor], "")
	tail := strings.Join(g[f.Cursor:], "")
	next := head + s + tail
	// Inserted runes may merge with neighbours into one cluster.
	f.Cursor = uniseg.GraphemeClusterCount(head + s)
	return next
}

// Backspace removes the cluster before the cursor. It reports false when
// there is nothing to delete.
func (f *TextField) Backspace(text string) (string, bool) {
	f.Clamp(text)
	if f.Cursor == 0 {
		return text, false
	}
	g := graphemes(text)
	f.Cursor--
	return strings.Join(g[:f.Cursor], "") + strings.Join(g[f.Cursor+1:], ""), true
}

// Delete removes the cluster under the cursor.
func (f *TextField) Delete(text string) (string, bool) {
	f.Clamp(text)
	g := graphemes(text)
	if f.Cursor >= len(g) {
		return text, false
	}
	return strings.Join(g[:f.Cursor], "") + strings.Join(g[f.Cursor+1:], ""), true
}

// Move shifts the cursor by delta clusters.
func (f *TextField) Move(text string, delta int) {
	f.Cursor += delta
	f.Clamp(text)
}

// Home moves the cursor to the start.
func (f *TextField) Home() { f.Cursor = 0 }

// End moves the cursor past the last cluster.
func (f *TextField) End(text string) {
	f.Cursor = uniseg.GraphemeClusterCount(text)
}

// CursorColumn returns the cell offset of the cursor within text.
func (f *TextField) CursorColumn(text string) int {
	col := 0
	for i, g := range graphemes(text) {
		if i >= f.Cursor {
			break
		}
		col += uniseg.StringWidth(g)
	}
	return col
}

// Scroll returns how many cells a field width cells wide is scrolled left so
// the cursor stays visible.
func (f *TextField) Scroll(text string, width int) int {
	if width <= 0 {
		return 0
	}
	col := f.CursorColumn(text)
	if col < width {
		return 0
	}
	return col - width + 1
}

// SetColumn places the cursor at the cluster covering cell col, or at the end.
func (f *TextField) SetColumn(text string, col int) {
	x := 0
	for i, g := range graphemes(text) {
		w := uniseg.StringWidth(g)
		if col < x+w {
			f.Cursor = i
			return
		}
		x += w
	}
	f.End(text)
}

// HexEntry is the typed fallback of the color picker.
type HexEntry struct {
	Active bool
	Buffer string
}

// maxHexLen is "#rrggbb".
const maxHexLen = 7

// Begin starts an entry seeded with prefix.
func (h *HexEntry) Begin(prefix string) {
	h.Active = true
	h.Buffer = ""
	for _, r := range prefix {
		h.Insert(r)
	}
}

// Insert appends r if it is a hex digit (or a leading '#'). It reports
// whether r was accepted.
func (h *HexEntry) Insert(r rune) bool {
	if !h.Active || len(h.Buffer) >= maxHexLen {
		return false
	}
	switch {
	case r == '#' && h.Buffer == "":
	case isHexDigit(r):
		if h.Buffer == "" {
			h.Buffer = "#"
		}
	default:
		return false
	}
	h.Buffer += string(r)
	return true
}

// Backspace drops the last character; an emptied entry stays active.
func (h *HexEntry) Backspace() {
	if len(h.Buffer) > 0 {
		h.Buffer = h.Buffer[:len(h.Buffer)-1]
	}
}

// Cancel abandons the entry.
func (h *HexEntry) Cancel() {
	h.Active = false
	h.Buffer = ""
}

// Commit ends the entry and returns what was typed.
func (h *HexEntry) Commit() string {
	v := h.Buffer
	h.Cancel()
	return v
}

// IsHexStart reports whether r may start a hex entry.
func IsHexStart(r rune) bool {
	return r == '#' || isHexDigit(r)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Drag tracks a label drag in progress.
type Drag struct {
	Active bool
	Last   types.Point
}

// Start begins a drag at p.
func (d *Drag) Start(p types.Point) {
	d.Active = true
	d.Last = p
}

// Step returns the movement since the previous position and records p.
func (d *Drag) Step(p types.Point) (dx, dy int) {
	if !d.Active {
		return 0, 0
	}
	dx, dy = p.X-d.Last.X, p.Y-d.Last.Y
	d.Last = p
	return dx, dy
}

// Stop ends the drag.
func (d *Drag) Stop() {
	d.Active = false
}
