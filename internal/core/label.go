package core

import (
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/types"
)

// Label dragging is constrained to the canvas bounds. Moves are not edits and
// never touch the history.

// SetBounds sets the canvas region the label must stay inside. The first call
// centres the label; later calls re-clamp it.
func (e *Editor) SetBounds(r types.Rect) {
	_ = e.apply(func(p *pending) error {
		e.bounds = r
		if !e.placed && !r.Empty() {
			w := style.LabelWidth(e.state)
			e.labelPos = types.Point{X: r.X + (r.W-w)/2, Y: r.Y + r.H/2}
			e.placed = true
			logger.DebugTagf("label", "Label: Initial placement at %v", e.labelPos)
		}
		e.reclampLocked(p)
		return nil
	})
}

// Bounds returns the canvas region.
func (e *Editor) Bounds() types.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bounds
}

// LabelPosition returns the label's top-left cell.
func (e *Editor) LabelPosition() types.Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.labelPos
}

// LabelRect returns the cells covered by the label at its current size.
func (e *Editor) LabelRect() types.Rect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return types.Rect{X: e.labelPos.X, Y: e.labelPos.Y, W: style.LabelWidth(e.state), H: 1}
}

// MoveLabel drags the label by (dx, dy), clamped to the bounds.
func (e *Editor) MoveLabel(dx, dy int) {
	_ = e.apply(func(p *pending) error {
		e.placeLocked(e.labelPos.Add(dx, dy), p)
		return nil
	})
}

// SetLabelPosition moves the label's top-left cell to pos, clamped to the bounds.
func (e *Editor) SetLabelPosition(pos types.Point) {
	_ = e.apply(func(p *pending) error {
		e.placeLocked(pos, p)
		return nil
	})
}

// placeLocked clamps pos into the bounds and queues a move event if the label moved.
func (e *Editor) placeLocked(pos types.Point, p *pending) {
	if !e.bounds.Empty() {
		pos = e.bounds.ClampBox(pos, style.LabelWidth(e.state), 1)
	}
	e.placed = true
	if pos == e.labelPos {
		return
	}
	e.labelPos = pos
	p.add(event.TypeLabelMoved, event.LabelMovedData{Position: pos})
	logger.DebugTagf("label", "Label: Moved to %v", pos)
}

// reclampLocked keeps the label inside the bounds after its size or the bounds changed.
func (e *Editor) reclampLocked(p *pending) {
	if e.bounds.Empty() || !e.placed {
		return
	}
	e.placeLocked(e.labelPos, p)
}
