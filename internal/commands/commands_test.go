package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bethropolis/stylo/internal/clipboard"
	"github.com/bethropolis/stylo/internal/core"
	"github.com/bethropolis/stylo/internal/core/history"
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/plugin"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// fakeAPI backs the editor API with a real editor, theme manager and an
// internal clipboard.
type fakeAPI struct {
	ed       *core.Editor
	themes   *theme.Manager
	clip     *clipboard.Clipboard
	commands map[string]plugin.CommandFunc
	raw      map[string]plugin.RawCommandFunc
	status   string
	quit     bool
}

var _ plugin.EditorAPI = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	api := &fakeAPI{
		ed:       core.NewEditor(style.Default(), history.Options{}),
		themes:   theme.NewManager("", ""),
		clip:     clipboard.New(false),
		commands: make(map[string]plugin.CommandFunc),
		raw:      make(map[string]plugin.RawCommandFunc),
	}
	RegisterAppCommands(api)
	return api
}

func (a *fakeAPI) run(t *testing.T, line string) error {
	t.Helper()
	parts := strings.Fields(line)
	if raw, ok := a.raw[parts[0]]; ok {
		rest := strings.TrimPrefix(line, parts[0])
		if rest != "" {
			rest = rest[1:]
		}
		return raw(rest)
	}
	fn, ok := a.commands[parts[0]]
	if !ok {
		t.Fatalf("command %q not registered", parts[0])
	}
	return fn(parts[1:])
}

func (a *fakeAPI) GetState() style.State           { return a.ed.State() }
func (a *fakeAPI) SetFontFamily(name string) error { return a.ed.SetFontFamily(name) }
func (a *fakeAPI) IncreaseFontSize() error         { return a.ed.IncreaseFontSize() }
func (a *fakeAPI) DecreaseFontSize() error         { return a.ed.DecreaseFontSize() }
func (a *fakeAPI) SetColor(hex string) error       { return a.ed.SetColor(hex) }
func (a *fakeAPI) SetText(text string) error       { return a.ed.SetText(text) }
func (a *fakeAPI) Undo() bool                      { return a.ed.Undo() }
func (a *fakeAPI) Redo() bool                      { return a.ed.Redo() }
func (a *fakeAPI) HistoryInfo() (int, int) {
	return a.ed.History().Cursor(), a.ed.History().Len()
}
func (a *fakeAPI) DispatchEvent(event.Type, interface{})   {}
func (a *fakeAPI) SubscribeEvent(event.Type, event.Handler) {}
func (a *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := a.commands[name]; ok {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.commands[name] = fn
	return nil
}
func (a *fakeAPI) RegisterRawCommand(name string, fn plugin.RawCommandFunc) error {
	if _, ok := a.commands[name]; ok {
		return fmt.Errorf("command '%s' already registered", name)
	}
	a.raw[name] = fn
	return nil
}
func (a *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	a.status = fmt.Sprintf(format, args...)
}
func (a *fakeAPI) GetThemeStyle(name string) tcell.Style { return a.themes.Current().GetStyle(name) }
func (a *fakeAPI) SetTheme(name string) error            { return a.themes.SetTheme(name) }
func (a *fakeAPI) GetTheme() *theme.Theme                { return a.themes.Current() }
func (a *fakeAPI) ListThemes() []string                  { return a.themes.ListThemes() }
func (a *fakeAPI) CopyToClipboard(text string) error      { return a.clip.Copy(text) }
func (a *fakeAPI) PasteFromClipboard() (string, error)    { return a.clip.Paste() }
func (a *fakeAPI) RequestQuit()                          { a.quit = true }

func TestSizeCommandStepsOneRecordPerStep(t *testing.T) {
	api := newFakeAPI()
	if err := api.run(t, "size 30"); err != nil {
		t.Fatal(err)
	}
	if got := api.GetState().FontSize; got != 30 {
		t.Errorf("size = %d", got)
	}
	if got := api.ed.History().Len(); got != 8 {
		t.Errorf("history len = %d, want 8 (7 steps)", got)
	}

	// An odd target stops at the nearest step below it.
	_ = api.run(t, "size 25px")
	if got := api.GetState().FontSize; got != 26 {
		t.Errorf("size = %d, want 26", got)
	}

	// Out-of-range targets clamp.
	_ = api.run(t, "size 500")
	if got := api.GetState().FontSize; got != style.MaxFontSize {
		t.Errorf("size = %d", got)
	}
	if err := api.run(t, "size big"); err == nil {
		t.Error("non-numeric size accepted")
	}
}

func TestStyleCommands(t *testing.T) {
	api := newFakeAPI()
	if err := api.run(t, "font times new roman"); err != nil {
		t.Fatal(err)
	}
	if err := api.run(t, "color #0af"); err != nil {
		t.Fatal(err)
	}
	if err := api.run(t, "text hello   world"); err != nil {
		t.Fatal(err)
	}
	want := style.State{FontFamily: "Times New Roman", FontSize: 16, Color: "#00aaff", Text: "hello   world"}
	if got := api.GetState(); got != want {
		t.Errorf("state = %+v, want %+v", got, want)
	}

	if err := api.run(t, "font Papyrus"); !errors.Is(err, core.ErrUnknownFont) {
		t.Errorf("font error = %v", err)
	}
	if err := api.run(t, "color red"); !errors.Is(err, core.ErrInvalidColor) {
		t.Errorf("color error = %v", err)
	}
}

func TestHistoryCommands(t *testing.T) {
	api := newFakeAPI()
	_ = api.run(t, "text a")
	_ = api.run(t, "text ab")
	_ = api.run(t, "text abc")

	if err := api.run(t, "undo 2"); err != nil {
		t.Fatal(err)
	}
	if got := api.GetState().Text; got != "a" {
		t.Errorf("text = %q", got)
	}
	_ = api.run(t, "history")
	if api.status != "History: entry 2 of 4, 1 undo, 2 redo" {
		t.Errorf("status = %q", api.status)
	}
	_ = api.run(t, "redo 5")
	if got := api.GetState().Text; got != "abc" || !strings.Contains(api.status, "newest") {
		t.Errorf("text = %q status = %q", got, api.status)
	}
	if err := api.run(t, "undo zero"); err == nil {
		t.Error("bad count accepted")
	}
}

func TestClipboardCommands(t *testing.T) {
	api := newFakeAPI()
	_ = api.run(t, "paste")
	if api.status != "Clipboard empty" {
		t.Errorf("status = %q", api.status)
	}
	_ = api.run(t, "copy")
	_ = api.run(t, "text other")
	_ = api.run(t, "paste")
	if got := api.GetState().Text; got != style.DefaultText {
		t.Errorf("text after paste = %q", got)
	}
}

func TestThemeCommands(t *testing.T) {
	api := newFakeAPI()
	if err := api.run(t, "theme paper light"); err != nil {
		t.Fatal(err)
	}
	if api.GetTheme().Name != "Paper Light" || api.status != "Theme set to: Paper Light" {
		t.Errorf("theme = %s status = %q", api.GetTheme().Name, api.status)
	}
	err := api.run(t, "theme neon")
	if err == nil || !strings.Contains(err.Error(), "DevComfort Dark") {
		t.Errorf("error = %v", err)
	}
	_ = api.run(t, "themes")
	if api.status != "Available themes: DevComfort Dark, Paper Light" {
		t.Errorf("status = %q", api.status)
	}
}

func TestQuitCommand(t *testing.T) {
	api := newFakeAPI()
	_ = api.run(t, "q")
	if !api.quit {
		t.Error("quit not requested")
	}
}

func TestTextCommandKeepsBlanks(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"text a   b", "a   b"},
		{"text \tindented", "\tindented"},
		{"text trailing  ", "trailing  "},
		{"text", ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			api := newFakeAPI()
			if err := api.run(t, tt.line); err != nil {
				t.Fatal(err)
			}
			if got := api.GetState().Text; got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEditsOnClosedEditorFail(t *testing.T) {
	api := newFakeAPI()
	api.ed.Close()
	if err := api.run(t, "size 30"); !errors.Is(err, core.ErrClosed) {
		t.Errorf("size error = %v, want ErrClosed", err)
	}
	if err := api.run(t, "text x"); !errors.Is(err, core.ErrClosed) {
		t.Errorf("text error = %v, want ErrClosed", err)
	}
	if n, err := StepSizeTo(api, 20); n != 0 || !errors.Is(err, core.ErrClosed) {
		t.Errorf("StepSizeTo = %d, %v", n, err)
	}
}
