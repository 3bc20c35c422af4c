// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/bethropolis/stylo/internal/core"
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/input"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/plugin" // For CommandFunc type
	"github.com/bethropolis/stylo/internal/statusbar"
	"github.com/bethropolis/stylo/internal/widget"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal  InputMode = iota // Keys go to the focused control
	ModeCommand                  // Keys edit the ':' command line
)

// ModeHandler manages input modes, command execution, and related state.
// All methods run on the event loop goroutine.
type ModeHandler struct {
	editor         *core.Editor
	ui             *widget.State
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quit           func()

	currentMode InputMode
	cmdBuffer   []rune
	commands    map[string]plugin.CommandFunc    // Command registry
	rawCommands map[string]plugin.RawCommandFunc // Commands taking the unsplit rest of the line
	lastButtons tcell.ButtonMask                 // Mouse buttons held at the previous mouse event
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	UI             *widget.State
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Quit           func() // Signals the app to terminate; must be safe to call twice
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.UI == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.Quit == nil {
		// Programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		ui:             cfg.UI,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quit:           cfg.Quit,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
		rawCommands:    make(map[string]plugin.RawCommandFunc),
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	default:
		logger.Warnf("ModeHandler: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if mh.hasCommand(name) {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// RegisterRawCommand adds a command that receives its arguments unsplit.
func (mh *ModeHandler) RegisterRawCommand(name string, cmdFunc plugin.RawCommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if mh.hasCommand(name) {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.rawCommands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered raw command ':%s'", name)
	return nil
}

func (mh *ModeHandler) hasCommand(name string) bool {
	_, plain := mh.commands[name]
	_, raw := mh.rawCommands[name]
	return plain || raw
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString names the mode for the status bar: the command line,
// or the focused control.
func (mh *ModeHandler) GetCurrentModeString() string {
	if mh.currentMode == ModeCommand {
		return "COMMAND"
	}
	if mh.ui.Focused == widget.IDNone {
		return ""
	}
	return mh.ui.Focused.String()
}

// GetCommandBuffer returns the current command buffer content (e.g., for display).
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return string(mh.cmdBuffer)
	}
	return ""
}
