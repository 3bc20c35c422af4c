package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/stylo/internal/core/history"
	"github.com/bethropolis/stylo/internal/style"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.InitialState(); got != style.Default() {
		t.Errorf("InitialState = %+v, want default", got)
	}
	opts := cfg.HistoryOptions()
	if opts.Policy != history.PolicyAppend || opts.MaxEntries != 0 || opts.CoalesceWindow != 0 {
		t.Errorf("HistoryOptions = %+v, want faithful defaults", opts)
	}
	if len(cfg.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", cfg.Warnings)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
disabled_tags = ["event"]

[editor]
font_family = "verdana"
font_size = 40
color = "#F00"
text = "Hello"

[history]
policy = "truncate"
max_entries = 50
coalesce_window = "750ms"

[theme]
name = "Paper Light"
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := style.State{FontFamily: "Verdana", FontSize: 40, Color: "#ff0000", Text: "Hello"}
	if got := cfg.InitialState(); got != want {
		t.Errorf("InitialState = %+v, want %+v", got, want)
	}
	opts := cfg.HistoryOptions()
	if opts.Policy != history.PolicyTruncate || opts.MaxEntries != 50 || opts.CoalesceWindow != 750*time.Millisecond {
		t.Errorf("HistoryOptions = %+v", opts)
	}
	if cfg.Logger.LogLevel != "debug" || len(cfg.Logger.DisabledTags) != 1 {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if cfg.Theme.Name != "Paper Light" {
		t.Errorf("Theme = %q", cfg.Theme.Name)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Editor.StatusBarHeight != StatusBarHeight {
		t.Errorf("StatusBarHeight = %d", cfg.Editor.StatusBarHeight)
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[editor]
font_family = "Papyrus"
font_size = 91
color = "blue"

[history]
policy = "tree"
max_entries = -3
coalesce_window = "soon"
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.FontFamily != style.DefaultFontFamily {
		t.Errorf("FontFamily = %q", cfg.Editor.FontFamily)
	}
	if cfg.Editor.FontSize != style.MaxFontSize {
		t.Errorf("FontSize = %d, want clamp to %d", cfg.Editor.FontSize, style.MaxFontSize)
	}
	if cfg.Editor.Color != style.DefaultColor {
		t.Errorf("Color = %q", cfg.Editor.Color)
	}
	if cfg.History.Policy != DefaultHistoryPolicy || cfg.History.MaxEntries != 0 {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.HistoryOptions().CoalesceWindow != 0 {
		t.Errorf("CoalesceWindow not reset")
	}
	if len(cfg.Warnings) < 5 {
		t.Errorf("warnings = %v, want one per invalid value", cfg.Warnings)
	}
}

func TestOddFontSizeSnapsToStep(t *testing.T) {
	path := writeConfig(t, "[editor]\nfont_size = 31\n")
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.FontSize != 30 {
		t.Errorf("FontSize = %d, want 30", cfg.Editor.FontSize)
	}
}

func TestMalformedFileReturnsErrorAndDefaults(t *testing.T) {
	path := writeConfig(t, "[editor\nfont_size = ")
	cfg, err := Load(path, nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("error = %v", err)
	}
	if cfg == nil || cfg.InitialState() != style.Default() {
		t.Errorf("config after error = %+v", cfg)
	}
}

func TestUnknownKeysWarn(t *testing.T) {
	path := writeConfig(t, "[editor]\nsparkles = true\n")
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Warnings) != 1 || !strings.Contains(cfg.Warnings[0], "sparkles") {
		t.Errorf("warnings = %v", cfg.Warnings)
	}
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[history]\npolicy = \"append\"\n")
	flags := NewFlags()
	rest, err := flags.Parse([]string{
		"-history-policy", "truncate",
		"-max-history", "10",
		"-coalesce", "1s",
		"-loglevel", "warn",
		"-log-tags", "history, editor,",
		"-system-clipboard=false",
		"-text", "from flag",
		"extra",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 1 || rest[0] != "extra" {
		t.Errorf("rest = %v", rest)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.History.Policy != "truncate" || cfg.History.MaxEntries != 10 || cfg.History.CoalesceWindow != "1s" {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.Logger.LogLevel != "warn" {
		t.Errorf("LogLevel = %q", cfg.Logger.LogLevel)
	}
	if got := cfg.Logger.EnabledTags; len(got) != 2 || got[0] != "history" || got[1] != "editor" {
		t.Errorf("EnabledTags = %v", got)
	}
	if cfg.Editor.SystemClipboard {
		t.Error("SystemClipboard flag not applied")
	}
	if cfg.Editor.Text != "from flag" {
		t.Errorf("Text = %q", cfg.Editor.Text)
	}
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "[history]\nmax_entries = 7\n")
	flags := NewFlags()
	if _, err := flags.Parse(nil); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.History.MaxEntries != 7 {
		t.Errorf("MaxEntries = %d, want 7", cfg.History.MaxEntries)
	}
}
