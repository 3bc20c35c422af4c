// Package core holds the styled-label editor: live style state, its undo/redo
// history and the label's position inside the canvas.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bethropolis/stylo/internal/core/history"
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/types"
)

var (
	// ErrUnknownFont is returned for font families outside style.FontFamilies.
	ErrUnknownFont = errors.New("unknown font family")
	// ErrInvalidColor is returned for colors that do not parse as hex.
	ErrInvalidColor = errors.New("invalid color")
	// ErrClosed is returned by edits on a closed editor.
	ErrClosed = errors.New("editor is closed")
)

// Editor is the styled-label editor. Every committed edit records a full
// snapshot in the history; undo and redo restore snapshots into live state.
type Editor struct {
	mu       sync.Mutex
	state    style.State
	history  *history.Manager
	events   *event.Manager
	initial  style.State
	bounds   types.Rect
	labelPos types.Point
	placed   bool // Label has been positioned inside bounds at least once
	closed   bool
}

// NewEditor creates an editor whose state and sole history entry are initial.
func NewEditor(initial style.State, opts history.Options) *Editor {
	return &Editor{
		state:   initial,
		initial: initial,
		history: history.NewManager(initial, opts),
	}
}

// SetEventManager connects the editor to an event bus. A nil manager disables events.
func (e *Editor) SetEventManager(m *event.Manager) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = m
}

// GetEventManager returns the connected event bus, possibly nil.
func (e *Editor) GetEventManager() *event.Manager {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.events
}

// pending collects events produced under the lock so they can be dispatched
// after it is released; handlers are free to call back into the editor.
type pending struct {
	events *event.Manager
	queue  []event.Event
}

func (p *pending) add(t event.Type, data interface{}) {
	p.queue = append(p.queue, event.Event{Type: t, Data: data})
}

func (p *pending) flush() {
	if p.events == nil {
		return
	}
	for _, ev := range p.queue {
		p.events.Dispatch(ev.Type, ev.Data)
	}
}

// commit replaces live state, records the snapshot and re-clamps the label.
// Caller holds the mutex.
func (e *Editor) commit(next style.State, kind history.ChangeKind, p *pending) {
	e.state = next
	e.history.Record(next, kind)
	p.add(event.TypeStyleChanged, event.StyleChangedData{Kind: kind, State: next})
	e.reclampLocked(p)
	logger.DebugTagf("editor", "Editor: %v edit -> %s", kind, next)
}

func (e *Editor) apply(fn func(p *pending) error) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	p := &pending{events: e.events}
	err := fn(p)
	e.mu.Unlock()
	p.flush()
	return err
}

// SetFontFamily selects a family from the fixed set (case-insensitive).
func (e *Editor) SetFontFamily(name string) error {
	family, ok := style.LookupFontFamily(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	return e.apply(func(p *pending) error {
		next := e.state
		next.FontFamily = family
		e.commit(next, history.ChangeFontFamily, p)
		return nil
	})
}

// IncreaseFontSize grows the size by one step, clamped to the maximum.
// A snapshot is recorded even when the size is already at the maximum.
func (e *Editor) IncreaseFontSize() error {
	return e.apply(func(p *pending) error {
		next := e.state
		next.FontSize = style.ClampFontSize(next.FontSize + style.FontSizeStep)
		e.commit(next, history.ChangeFontSize, p)
		return nil
	})
}

// DecreaseFontSize shrinks the size by one step, clamped to the minimum.
// A snapshot is recorded even when the size is already at the minimum.
func (e *Editor) DecreaseFontSize() error {
	return e.apply(func(p *pending) error {
		next := e.state
		next.FontSize = style.ClampFontSize(next.FontSize - style.FontSizeStep)
		e.commit(next, history.ChangeFontSize, p)
		return nil
	})
}

// SetColor sets the label color. Any "#rgb"/"#rrggbb" value is accepted and
// stored in canonical "#rrggbb" form.
func (e *Editor) SetColor(hex string) error {
	color, err := style.NormalizeColor(hex)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return e.apply(func(p *pending) error {
		next := e.state
		next.Color = color
		e.commit(next, history.ChangeColor, p)
		return nil
	})
}

// SetText replaces the label text. Each call is one change event and records
// one snapshot, so the text field records once per keystroke.
func (e *Editor) SetText(text string) error {
	return e.apply(func(p *pending) error {
		next := e.state
		next.Text = text
		e.commit(next, history.ChangeText, p)
		return nil
	})
}

// Undo restores the previous snapshot. It reports false at the first entry
// and on a closed editor.
func (e *Editor) Undo() bool {
	return e.move(event.DirectionUndo)
}

// Redo restores the next snapshot. It reports false at the last entry
// and on a closed editor.
func (e *Editor) Redo() bool {
	return e.move(event.DirectionRedo)
}

func (e *Editor) move(dir event.Direction) bool {
	moved := false
	_ = e.apply(func(p *pending) error {
		var restored style.State
		if dir == event.DirectionUndo {
			restored, moved = e.history.Undo()
		} else {
			restored, moved = e.history.Redo()
		}
		if !moved {
			return nil
		}
		e.state = restored
		p.add(event.TypeHistoryMoved, event.HistoryMovedData{
			Direction: dir,
			Cursor:    e.history.Cursor(),
			Len:       e.history.Len(),
			State:     restored,
		})
		e.reclampLocked(p)
		logger.DebugTagf("editor", "Editor: %v -> %s", dir, restored)
		return nil
	})
	return moved
}

// State returns a copy of the live state.
func (e *Editor) State() style.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// History exposes the snapshot log for read access (cursor, length, entries).
func (e *Editor) History() *history.Manager {
	return e.history
}

// CanUndo reports whether Undo would change the state.
func (e *Editor) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would change the state.
func (e *Editor) CanRedo() bool {
	return e.history.CanRedo()
}

// Close tears the instance down: the history returns to its initial entry and
// the event bus is detached. Later edits return ErrClosed and Undo/Redo
// report false.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.history.Reset(e.initial)
	e.state = e.initial
	e.events = nil
	logger.Debugf("Editor: Closed.")
}
