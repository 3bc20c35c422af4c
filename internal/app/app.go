// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/stylo/internal/clipboard"
	"github.com/bethropolis/stylo/internal/commands"
	"github.com/bethropolis/stylo/internal/config"
	"github.com/bethropolis/stylo/internal/core"
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/input"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/modehandler"
	"github.com/bethropolis/stylo/internal/plugin"
	"github.com/bethropolis/stylo/internal/statusbar"
	"github.com/bethropolis/stylo/internal/theme"
	"github.com/bethropolis/stylo/internal/tui"
	"github.com/bethropolis/stylo/internal/utils"
	"github.com/bethropolis/stylo/internal/widget"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	clipboard     *clipboard.Clipboard
	editorAPI     plugin.EditorAPI

	// uiMu guards ui and layout, shared by the event loop and the draw loop.
	uiMu   sync.Mutex
	ui     *widget.State
	layout widget.Layout

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}

	// statusExpiry redraws once the latest temporary message has timed out.
	statusExpiry utils.Debouncer
}

// NewApp creates and initializes a new application instance. A nil screen
// uses the real terminal.
func NewApp(cfg *config.Config, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := theme.NewManager(cfg.ThemesDir(), cfg.Theme.Name)

	var tuiManager *tui.TUI
	var err error
	if screen == nil {
		tuiManager, err = tui.New(themeManager.Current())
	} else {
		tuiManager, err = tui.NewWithScreen(screen, themeManager.Current())
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	editor := core.NewEditor(cfg.InitialState(), cfg.HistoryOptions())
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	statusCfg := statusbar.DefaultConfig()
	statusCfg.MessageTimeout = config.MessageTimeout

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusbar.New(statusCfg),
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		clipboard:     clipboard.New(cfg.Editor.SystemClipboard),
		ui:            widget.NewState(),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}
	a.ui.Text.End(editor.State().Text)

	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		UI:             a.ui,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      a.statusBar,
		Quit:           a.requestQuit,
	})

	a.editorAPI = newEditorAPI(a)

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeStyleChanged, a.handleStyleChanged)
	eventManager.Subscribe(event.TypeHistoryMoved, a.handleHistoryMoved)
	eventManager.Subscribe(event.TypeLabelMoved, a.handleLabelMoved)

	commands.RegisterAppCommands(a.editorAPI)

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	// Triggers RegisterCommand via the API.
	a.pluginManager.InitializePlugins(a.editorAPI)

	a.relayout()
	logger.Infof("App: Initialized with %s (history policy %v)", editor.State(), cfg.HistoryOptions().Policy)
	return a, nil
}

// Run starts the application's main event and drawing loops. It returns when
// a quit is requested.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.editor.Close()
	defer a.pluginManager.ShutdownPlugins()
	defer a.statusExpiry.Stop()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.editorAPI.SetStatusMessage("stylo - Tab: next control | Enter: activate | : commands | Esc: quit")

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop handles TUI events, delegating input to the ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return // Screen finalized
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			a.relayout()
			needsRedraw = true

		case *tcell.EventKey:
			a.uiMu.Lock()
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)
			a.uiMu.Unlock()

		case *tcell.EventMouse:
			a.uiMu.Lock()
			needsRedraw = a.modeHandler.HandleMouseEvent(eventData, a.layout)
			a.uiMu.Unlock()
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// relayout recomputes the layout for the current screen size and re-clamps
// the label into the new canvas.
func (a *App) relayout() {
	w, h := a.tuiManager.Size()
	a.uiMu.Lock()
	a.layout = widget.Compute(w, h, a.cfg.Editor.StatusBarHeight)
	inner := a.layout.CanvasInner
	a.uiMu.Unlock()
	logger.DebugTagf("draw", "App: Layout for %dx%d, canvas %+v", w, h, inner)
	a.editor.SetBounds(inner)
}

// requestQuit signals the main loop to exit. Safe to call more than once.
func (a *App) requestQuit() {
	a.quitOnce.Do(func() {
		logger.Debugf("App: Quit requested.")
		close(a.quit)
	})
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// GetModeHandler allows the API adapter to access the mode handler for command registration.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

// GetThemeManager returns the theme manager.
func (a *App) GetThemeManager() *theme.Manager {
	return a.themeManager
}

// GetEditor returns the label editor.
func (a *App) GetEditor() *core.Editor {
	return a.editor
}

// GetEventManager returns the application event bus.
func (a *App) GetEventManager() *event.Manager {
	return a.eventManager
}

// SetTheme changes the app's active theme and triggers a redraw.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := a.themeManager.Current()
	a.tuiManager.ApplyTheme(current)
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	a.requestRedraw()
	return nil
}
