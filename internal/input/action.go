// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

// Define the set of possible actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit                  // Esc: cancel what is open, otherwise quit
	ActionForceQuit             // Ctrl+Q / Ctrl+C

	// --- Focus ---
	ActionFocusNext // Tab
	ActionFocusPrev // Shift+Tab
	ActionActivate  // Enter: press button, open/choose dropdown, apply hex entry

	// --- Movement / Stepping ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome
	ActionMoveEnd

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- Editor Mode ---
	ActionEnterCommandMode // ':' outside text-accepting controls
)

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune and ActionEnterCommandMode
}
