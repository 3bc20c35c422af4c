package history

import (
	"sync"
	"time"

	"github.com/bethropolis/stylo/internal/logger"
	"github.com/bethropolis/stylo/internal/style"
)

// Options tune the log. The zero value is the faithful behavior: unbounded,
// append-always, one entry per recorded change.
type Options struct {
	Policy Policy
	// MaxEntries bounds the log; 0 means unbounded. Oldest entries are evicted first.
	MaxEntries int
	// CoalesceWindow merges consecutive text changes recorded within the window
	// into a single entry; 0 disables merging.
	CoalesceWindow time.Duration
	// Now supplies timestamps; nil means time.Now.
	Now func() time.Time
}

// Manager holds the snapshot log and the cursor into it.
// The cursor always satisfies 0 <= cursor < len(entries).
type Manager struct {
	mutex   sync.Mutex
	entries []Entry
	cursor  int
	opts    Options
}

// NewManager creates a history whose only entry is initial.
func NewManager(initial style.State, opts Options) *Manager {
	if opts.MaxEntries < 0 {
		opts.MaxEntries = 0
	}
	if opts.MaxEntries == 1 {
		// A single slot would make every edit evict the entry it should undo to.
		opts.MaxEntries = 2
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &Manager{opts: opts}
	m.entries = []Entry{{State: initial, Kind: ChangeInitial, At: opts.Now()}}
	return m
}

// Record appends a snapshot of state and moves the cursor to it.
func (m *Manager) Record(state style.State, kind ChangeKind) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := m.opts.Now()

	if m.coalescible(kind, now) {
		last := &m.entries[len(m.entries)-1]
		last.State = state
		last.At = now
		logger.DebugTagf("history", "History: Coalesced %v into entry %d", kind, m.cursor)
		return
	}

	if m.opts.Policy == PolicyTruncate && m.cursor < len(m.entries)-1 {
		dropped := len(m.entries) - 1 - m.cursor
		m.entries = m.entries[:m.cursor+1]
		logger.DebugTagf("history", "History: Truncated %d redo entries", dropped)
	}

	m.entries = append(m.entries, Entry{State: state, Kind: kind, At: now})

	if m.opts.MaxEntries > 0 && len(m.entries) > m.opts.MaxEntries {
		evict := len(m.entries) - m.opts.MaxEntries
		m.entries = append(m.entries[:0:0], m.entries[evict:]...)
		logger.DebugTagf("history", "History: Evicted %d oldest entries", evict)
	}

	m.cursor = len(m.entries) - 1
	logger.DebugTagf("history", "History: Recorded %v. Cursor: %d, Count: %d", kind, m.cursor, len(m.entries))
}

// coalescible reports whether a record of kind at now should overwrite the
// last entry instead of appending. Caller holds the mutex.
func (m *Manager) coalescible(kind ChangeKind, now time.Time) bool {
	if m.opts.CoalesceWindow <= 0 || kind != ChangeText {
		return false
	}
	if m.cursor != len(m.entries)-1 {
		return false
	}
	last := m.entries[len(m.entries)-1]
	return last.Kind == ChangeText && now.Sub(last.At) <= m.opts.CoalesceWindow
}

// Undo moves the cursor back one entry and returns the snapshot there.
// It reports false, leaving the cursor alone, when already at the first entry.
func (m *Manager) Undo() (style.State, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.cursor <= 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return m.entries[m.cursor].State, false
	}
	m.cursor--
	logger.DebugTagf("history", "History: Undo to entry %d (%v)", m.cursor, m.entries[m.cursor].Kind)
	return m.entries[m.cursor].State, true
}

// Redo moves the cursor forward one entry and returns the snapshot there.
// It reports false when already at the last entry.
func (m *Manager) Redo() (style.State, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.cursor >= len(m.entries)-1 {
		logger.DebugTagf("history", "History: Nothing to redo. cursor=%d, len=%d", m.cursor, len(m.entries))
		return m.entries[m.cursor].State, false
	}
	m.cursor++
	logger.DebugTagf("history", "History: Redo to entry %d (%v)", m.cursor, m.entries[m.cursor].Kind)
	return m.entries[m.cursor].State, true
}

// Reset discards the log and starts over from initial.
func (m *Manager) Reset(initial style.State) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.entries = []Entry{{State: initial, Kind: ChangeInitial, At: m.opts.Now()}}
	m.cursor = 0
	logger.DebugTagf("history", "History: Reset.")
}

// Current returns the snapshot under the cursor.
func (m *Manager) Current() style.State {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.entries[m.cursor].State
}

// Len returns the number of entries in the log.
func (m *Manager) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.entries)
}

// Cursor returns the index of the current entry.
func (m *Manager) Cursor() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.cursor
}

// CanUndo returns true if Undo would move the cursor.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.cursor > 0
}

// CanRedo returns true if Redo would move the cursor.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.cursor < len(m.entries)-1
}

// Entries returns a copy of the log.
func (m *Manager) Entries() []Entry {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Policy returns the configured record policy.
func (m *Manager) Policy() Policy {
	return m.opts.Policy
}
