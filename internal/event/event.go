// internal/event/event.go
package event

import (
	"github.com/bethropolis/stylo/internal/core/history"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor events
	TypeStyleChanged // A committed edit changed the live state and recorded a snapshot
	TypeHistoryMoved // Undo or redo restored a snapshot
	TypeLabelMoved   // The label was dragged or re-clamped into the canvas

	// Raw key press, forwarded before mode handling
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

func (t Type) String() string {
	switch t {
	case TypeStyleChanged:
		return "StyleChanged"
	case TypeHistoryMoved:
		return "HistoryMoved"
	case TypeLabelMoved:
		return "LabelMoved"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	case TypeThemeChanged:
		return "ThemeChanged"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// StyleChangedData carries the snapshot that was just recorded.
type StyleChangedData struct {
	Kind  history.ChangeKind
	State style.State
}

// Direction of a history move.
type Direction int

const (
	DirectionUndo Direction = iota
	DirectionRedo
)

func (d Direction) String() string {
	if d == DirectionRedo {
		return "redo"
	}
	return "undo"
}

// HistoryMovedData describes an undo or redo and the restored state.
type HistoryMovedData struct {
	Direction Direction
	Cursor    int
	Len       int
	State     style.State
}

// LabelMovedData contains the label's new top-left cell.
type LabelMovedData struct {
	Position types.Point
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
