package commands

import "github.com/bethropolis/stylo/internal/theme"

// ThemeAPI is the part of the editor API theme commands need.
type ThemeAPI interface {
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	SetStatusMessage(format string, args ...interface{})
}
