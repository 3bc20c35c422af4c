// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/stylo/internal/core/history"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/style"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	Editor  EditorConfig  `toml:"editor"`
	History HistoryConfig `toml:"history"`
	Theme   ThemeConfig   `toml:"theme"`

	// Warnings collects problems found while loading; they are logged once the
	// logger is up, since loading happens before logger.Init.
	Warnings []string `toml:"-"`
}

// EditorConfig holds the label's starting style and UI settings.
type EditorConfig struct {
	FontFamily      string `toml:"font_family"`
	FontSize        int    `toml:"font_size"`
	Color           string `toml:"color"`
	Text            string `toml:"text"`
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
}

// HistoryConfig tunes the undo/redo log.
type HistoryConfig struct {
	Policy         string `toml:"policy"`          // "append" or "truncate"
	MaxEntries     int    `toml:"max_entries"`     // 0 = unbounded
	CoalesceWindow string `toml:"coalesce_window"` // Go duration, "0s" = off
}

// ThemeConfig selects the active theme and where custom themes live.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"` // Empty means <user config dir>/stylo/themes
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: DefaultLogFileName,
		},
		Editor: EditorConfig{
			FontFamily:      style.DefaultFontFamily,
			FontSize:        style.DefaultFontSize,
			Color:           style.DefaultColor,
			Text:            style.DefaultText,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		History: HistoryConfig{
			Policy:         DefaultHistoryPolicy,
			MaxEntries:     DefaultMaxHistory,
			CoalesceWindow: DefaultCoalesceWindow.String(),
		},
		Theme: ThemeConfig{
			Name: DefaultThemeName,
		},
	}
}

// DefaultConfigPath returns <user config dir>/stylo/config.toml, or "" if the
// user config dir is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	warn := func(format string, args ...interface{}) {
		c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
	}

	if family, ok := style.LookupFontFamily(c.Editor.FontFamily); ok {
		c.Editor.FontFamily = family
	} else {
		warn("unknown font_family %q, using %s", c.Editor.FontFamily, defaults.Editor.FontFamily)
		c.Editor.FontFamily = defaults.Editor.FontFamily
	}

	// Sizes snap to the step grid inside the allowed range.
	size := style.ClampFontSize(c.Editor.FontSize)
	size -= (size - style.MinFontSize) % style.FontSizeStep
	if size != c.Editor.FontSize {
		warn("font_size %d adjusted to %d", c.Editor.FontSize, size)
		c.Editor.FontSize = size
	}

	if color, err := style.NormalizeColor(c.Editor.Color); err == nil {
		c.Editor.Color = color
	} else {
		warn("%v, using %s", err, defaults.Editor.Color)
		c.Editor.Color = defaults.Editor.Color
	}

	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}

	if _, err := history.ParsePolicy(c.History.Policy); err != nil {
		warn("%v, using %s", err, defaults.History.Policy)
		c.History.Policy = defaults.History.Policy
	}
	if c.History.MaxEntries < 0 {
		warn("history max_entries %d is negative, using unbounded", c.History.MaxEntries)
		c.History.MaxEntries = defaults.History.MaxEntries
	}
	if c.History.CoalesceWindow == "" {
		c.History.CoalesceWindow = defaults.History.CoalesceWindow
	}
	if d, err := time.ParseDuration(c.History.CoalesceWindow); err != nil || d < 0 {
		warn("invalid coalesce_window %q, disabling", c.History.CoalesceWindow)
		c.History.CoalesceWindow = defaults.History.CoalesceWindow
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Theme.Name == "" {
		c.Theme.Name = defaults.Theme.Name
	}
}

// Load builds the effective configuration: defaults, then the TOML file at
// configFilePath (or the default location when empty), then flag overrides,
// then validation. Only an unreadable or malformed file is an error; the
// returned config is usable either way.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		fileCfg := NewDefaultConfig()
		if err := loadFromFile(fileCfg, effectivePath); err != nil {
			loadErr = err
		} else {
			cfg = fileCfg
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, loadErr
}

// InitialState is the style the editor starts from.
func (c *Config) InitialState() style.State {
	return style.State{
		FontFamily: c.Editor.FontFamily,
		FontSize:   c.Editor.FontSize,
		Color:      c.Editor.Color,
		Text:       c.Editor.Text,
	}
}

// HistoryOptions converts the [history] section. Values were checked by validate.
func (c *Config) HistoryOptions() history.Options {
	policy, _ := history.ParsePolicy(c.History.Policy)
	window, _ := time.ParseDuration(c.History.CoalesceWindow)
	return history.Options{
		Policy:         policy,
		MaxEntries:     c.History.MaxEntries,
		CoalesceWindow: window,
	}
}

// ThemesDir returns the directory custom themes are loaded from, or "".
func (c *Config) ThemesDir() string {
	if c.Theme.Dir != "" {
		return c.Theme.Dir
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, ThemesDirName)
}
