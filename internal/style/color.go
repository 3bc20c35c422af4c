package style

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// NormalizeColor parses a "#rgb" or "#rrggbb" color (the leading '#' is optional)
// and returns it in canonical lowercase "#rrggbb" form.
func NormalizeColor(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("empty color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return "", fmt.Errorf("invalid color %q: want #rgb or #rrggbb", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.Hex(), nil
}

// TermColor converts a hex color to a tcell truecolor. Unparseable input yields
// tcell.ColorDefault.
func TermColor(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ShiftHue rotates the hue of hex by degrees, keeping saturation and value.
// Achromatic colors (black, grey, white) gain full saturation so that
// stepping the hue always produces a visible change.
func ShiftHue(hex string, degrees float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	h, s, v := c.Hsv()
	if s == 0 {
		s = 1
		if v == 0 {
			v = 1
		}
	}
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, s, v).Clamped().Hex(), nil
}

// ShiftValue changes the HSV value (brightness) of hex by delta in [−1, 1].
func ShiftValue(hex string, delta float64) (string, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", hex, err)
	}
	h, s, v := c.Hsv()
	v = math.Max(0, math.Min(1, v+delta))
	return colorful.Hsv(h, s, v).Clamped().Hex(), nil
}

// Contrasting returns black or white, whichever reads better on top of hex.
func Contrasting(hex string) tcell.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
