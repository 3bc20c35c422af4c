package modehandler

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/stylo/internal/input"
	"github.com/bethropolis/stylo/internal/logger"
)

// enterCommandMode opens the ':' command line.
func (mh *ModeHandler) enterCommandMode() {
	mh.ui.Dropdown.Close()
	mh.ui.Hex.Cancel()
	mh.currentMode = ModeCommand
	mh.cmdBuffer = mh.cmdBuffer[:0]
	mh.statusBar.SetTemporaryMessage(":")
	logger.Debugf("ModeHandler: Entering Command Mode")
}

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	needsUpdate := false // Track if status bar text needs update

	switch actionEvent.Action {
	case input.ActionInsertRune, input.ActionEnterCommandMode:
		mh.cmdBuffer = append(mh.cmdBuffer, actionEvent.Rune)
		needsUpdate = true

	case input.ActionDeleteCharBackward: // Backspace
		if len(mh.cmdBuffer) > 0 {
			mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]
			needsUpdate = true
		} else {
			mh.currentMode = ModeNormal
			mh.statusBar.ResetTemporaryMessage()
			logger.Debugf("ModeHandler: Exiting Command Mode via Backspace")
		}

	case input.ActionActivate: // Enter: Execute command
		mh.currentMode = ModeNormal
		mh.executeCommand()

	case input.ActionQuit: // Escape: Cancel command
		mh.currentMode = ModeNormal
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.ResetTemporaryMessage()
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")

	case input.ActionForceQuit:
		mh.quit()
		actionProcessed = false

	default:
		actionProcessed = false // Ignore other actions
	}

	if needsUpdate && mh.currentMode == ModeCommand {
		mh.statusBar.SetTemporaryMessage(":%s", string(mh.cmdBuffer))
	}

	return actionProcessed
}

// executeCommand parses and runs the command in cmdBuffer.
func (mh *ModeHandler) executeCommand() {
	// Trailing blanks may belong to a raw command's argument.
	cmdStr := strings.TrimLeftFunc(string(mh.cmdBuffer), unicode.IsSpace)
	mh.cmdBuffer = mh.cmdBuffer[:0]
	if strings.TrimSpace(cmdStr) == "" {
		mh.statusBar.ResetTemporaryMessage()
		return
	}
	mh.ExecuteCommand(cmdStr)
}

// ExecuteCommand runs a command line such as "size 30" as if typed after ':'.
// Failures are reported on the status bar.
func (mh *ModeHandler) ExecuteCommand(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName := parts[0]
	args := parts[1:]

	// The status bar resets so commands that report nothing leave the default line.
	mh.statusBar.ResetTemporaryMessage()
	var err error
	if rawFunc, ok := mh.rawCommands[cmdName]; ok {
		rest := rawRest(cmdStr, cmdName)
		logger.Debugf("ModeHandler: Executing command ':%s' with %q", cmdName, rest)
		err = rawFunc(rest)
	} else if cmdFunc, ok := mh.commands[cmdName]; ok {
		logger.Debugf("ModeHandler: Executing command ':%s' with args %v", cmdName, args)
		err = cmdFunc(args)
	} else {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	if err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}

// rawRest returns what follows name and its single separator in cmdStr.
func rawRest(cmdStr, name string) string {
	rest := strings.TrimLeftFunc(cmdStr, unicode.IsSpace)[len(name):]
	_, size := utf8.DecodeRuneInString(rest)
	return rest[size:]
}
