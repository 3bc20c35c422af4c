// Package style defines the label's appearance and content state.
package style

import (
	"fmt"
	"strings"
)

// Font size bounds and step. Sizes outside the range are clamped, never rejected.
const (
	MinFontSize  = 16
	MaxFontSize  = 88
	FontSizeStep = 2
)

// Defaults applied when the editor is created.
const (
	DefaultFontFamily = "Arial"
	DefaultFontSize   = MinFontSize
	DefaultColor      = "#000000"
	DefaultText       = "New Text"
)

// FontFamilies is the fixed set offered by the font dropdown, in display order.
var FontFamilies = []string{
	"Arial",
	"Fantasy",
	"Times New Roman",
	"Verdana",
	"cursive",
	"Courier New",
}

// State is one complete snapshot of the label: font family, size, color and text.
// It is a plain value; copies never share memory.
type State struct {
	FontFamily string
	FontSize   int
	Color      string
	Text       string
}

// Default returns the state every editor starts from.
func Default() State {
	return State{
		FontFamily: DefaultFontFamily,
		FontSize:   DefaultFontSize,
		Color:      DefaultColor,
		Text:       DefaultText,
	}
}

// String renders the state for logs and the status bar.
func (s State) String() string {
	return fmt.Sprintf("%s %dpx %s %q", s.FontFamily, s.FontSize, s.Color, s.Text)
}

// LookupFontFamily resolves name (case-insensitive) to its canonical family name.
func LookupFontFamily(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, f := range FontFamilies {
		if strings.EqualFold(f, name) {
			return f, true
		}
	}
	return "", false
}

// FontIndex returns the dropdown index of family, or -1.
func FontIndex(family string) int {
	for i, f := range FontFamilies {
		if f == family {
			return i
		}
	}
	return -1
}

// ClampFontSize limits size to [MinFontSize, MaxFontSize].
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// LetterSpacing maps a font size to the number of blank cells drawn between
// graphemes: 0 at 16px, 3 at 88px.
func LetterSpacing(size int) int {
	return (ClampFontSize(size) - MinFontSize) / 24
}
