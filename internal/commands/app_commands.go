package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/plugin"
)

// RegisterAppCommands registers built-in commands: style edits, history,
// clipboard, themes and quit.
func RegisterAppCommands(api plugin.EditorAPI) {
	RegisterStyleCommands(api)
	RegisterHistoryCommands(api)
	RegisterClipboardCommands(api)
	RegisterThemeCommands(api, api)

	register(api, "q", func(args []string) error {
		api.RequestQuit()
		return nil
	})
	register(api, "quit", func(args []string) error {
		api.RequestQuit()
		return nil
	})
}

func register(api plugin.EditorAPI, name string, fn plugin.CommandFunc) {
	if err := api.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}

// RegisterThemeCommands registers only theme-related commands
func RegisterThemeCommands(api plugin.EditorAPI, themeAPI ThemeAPI) {
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			currentTheme := themeAPI.GetTheme()
			themeAPI.SetStatusMessage("Current theme: %s", currentTheme.Name)
			return nil
		}

		themeName := strings.Join(args, " ") // Allow theme names with spaces
		err := themeAPI.SetTheme(themeName)  // API call handles manager update and redraw request
		if err != nil {
			themes := themeAPI.ListThemes()
			themeList := strings.Join(themes, ", ")
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, themeList)
		}
		themeAPI.SetStatusMessage("Theme set to: %s", themeAPI.GetTheme().Name)
		return nil
	}

	themeListCmdFunc := func(args []string) error {
		themes := themeAPI.ListThemes()
		themeList := strings.Join(themes, ", ")
		themeAPI.SetStatusMessage("Available themes: %s", themeList)
		return nil
	}

	register(api, "theme", themeCmdFunc)
	register(api, "themes", themeListCmdFunc) // Alias :themes for listing
}
