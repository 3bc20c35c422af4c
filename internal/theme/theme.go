// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/stylo/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the renderer. Themes may define any subset; missing
// names fall back through their dotted base name to "Default".
const (
	StyleDefault          = "Default"
	StyleToolbar          = "Toolbar"
	StyleButton           = "Button"
	StyleButtonFocused    = "Button.focused"
	StyleButtonDisabled   = "Button.disabled"
	StyleCanvas           = "Canvas"
	StyleCanvasBorder     = "Canvas.border"
	StylePanel            = "Panel"
	StylePanelTitle       = "Panel.title"
	StyleControl          = "Control"
	StyleControlFocused   = "Control.focused"
	StyleDropdownItem     = "Dropdown"
	StyleDropdownSelected = "Dropdown.selected"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBar.message"
	StyleStatusBarCommand = "StatusBar.command"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, falling back to its base name (part before the
// first dot), then "Default", then tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DevComfortDark is the built-in dark theme.
var DevComfortDark = func() Theme {
	dcBackground := tcell.NewHexColor(0x2a2f38)
	dcCanvas := tcell.NewHexColor(0x1e2228)
	dcForeground := tcell.NewHexColor(0xc5cdd9)
	dcComment := tcell.NewHexColor(0x5c6370)
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcGreen := tcell.NewHexColor(0x98c379)
	dcBlue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)
	panel := tcell.StyleDefault.Background(dcBackground).Foreground(dcForeground)

	return Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          baseStyle,
			StyleToolbar:          panel,
			StyleButton:           panel.Foreground(dcBlue).Bold(true),
			StyleButtonFocused:    panel.Background(dcBlue).Foreground(dcBackground).Bold(true),
			StyleButtonDisabled:   panel.Foreground(dcComment),
			StyleCanvas:           baseStyle.Background(dcCanvas),
			StyleCanvasBorder:     baseStyle.Background(dcCanvas).Foreground(dcComment),
			StylePanel:            panel,
			StylePanelTitle:       panel.Foreground(dcYellow).Bold(true),
			StyleControl:          panel.Foreground(dcForeground),
			StyleControlFocused:   panel.Foreground(dcGreen).Bold(true).Underline(true),
			StyleDropdownItem:     panel.Foreground(dcForeground),
			StyleDropdownSelected: panel.Reverse(true),
			StyleStatusBar:        panel,
			StyleStatusBarMessage: panel.Bold(true),
			StyleStatusBarCommand: panel.Foreground(dcGreen).Bold(true),
		},
	}
}()

// PaperLight is the built-in light theme.
var PaperLight = func() Theme {
	paper := tcell.NewHexColor(0xfafafa)
	canvas := tcell.NewHexColor(0xffffff)
	ink := tcell.NewHexColor(0x383a42)
	muted := tcell.NewHexColor(0xa0a1a7)
	blue := tcell.NewHexColor(0x4078f2)
	green := tcell.NewHexColor(0x50a14f)
	panelBg := tcell.NewHexColor(0xeaeaeb)

	base := tcell.StyleDefault.Background(paper).Foreground(ink)
	panel := tcell.StyleDefault.Background(panelBg).Foreground(ink)

	return Theme{
		Name:   "Paper Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleToolbar:          panel,
			StyleButton:           panel.Foreground(blue).Bold(true),
			StyleButtonFocused:    panel.Background(blue).Foreground(canvas).Bold(true),
			StyleButtonDisabled:   panel.Foreground(muted),
			StyleCanvas:           base.Background(canvas),
			StyleCanvasBorder:     base.Background(canvas).Foreground(muted),
			StylePanel:            panel,
			StylePanelTitle:       panel.Foreground(blue).Bold(true),
			StyleControl:          panel,
			StyleControlFocused:   panel.Foreground(green).Bold(true).Underline(true),
			StyleDropdownItem:     panel,
			StyleDropdownSelected: panel.Reverse(true),
			StyleStatusBar:        panel,
			StyleStatusBarMessage: panel.Bold(true),
			StyleStatusBarCommand: panel.Foreground(green).Bold(true),
		},
	}
}()
