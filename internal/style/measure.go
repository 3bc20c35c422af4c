package style

import "github.com/rivo/uniseg"

// LabelWidth returns the number of cells the label occupies when drawn with
// s's letter spacing. An empty label still occupies one cell so it can be grabbed.
func LabelWidth(s State) int {
	spacing := LetterSpacing(s.FontSize)
	width, clusters := 0, 0
	gr := uniseg.NewGraphemes(s.Text)
	for gr.Next() {
		width += gr.Width()
		clusters++
	}
	if clusters > 1 {
		width += spacing * (clusters - 1)
	}
	if width < 1 {
		width = 1
	}
	return width
}
