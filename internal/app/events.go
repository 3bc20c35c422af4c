package app

import (
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/logger"
)

// handleStyleChanged redraws after a committed edit.
func (a *App) handleStyleChanged(e event.Event) bool {
	if data, ok := e.Data.(event.StyleChangedData); ok {
		logger.DebugTagf("event", "App: %v change -> %s", data.Kind, data.State)
	}
	a.requestRedraw()
	return false // Not consumed
}

// handleHistoryMoved redraws after undo or redo.
func (a *App) handleHistoryMoved(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryMovedData); ok {
		logger.DebugTagf("event", "App: %v to entry %d/%d", data.Direction, data.Cursor+1, data.Len)
	}
	a.requestRedraw()
	return false // Not consumed
}

// handleLabelMoved redraws after a drag or re-clamp.
func (a *App) handleLabelMoved(e event.Event) bool {
	a.requestRedraw()
	return false // Not consumed
}
