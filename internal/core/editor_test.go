package core

import (
	"errors"
	"testing"

	"github.com/bethropolis/stylo/internal/core/history"
	"github.com/bethropolis/stylo/internal/event"
	"github.com/bethropolis/stylo/internal/style"
	"github.com/bethropolis/stylo/internal/types"
)

func newTestEditor() *Editor {
	return NewEditor(style.Default(), history.Options{})
}

func TestFontSizeStaysInRange(t *testing.T) {
	e := newTestEditor()
	prev := e.State().FontSize
	// 40 increments overshoot the ceiling, 40 decrements overshoot the floor.
	for i := 0; i < 80; i++ {
		if i < 40 {
			e.IncreaseFontSize()
		} else {
			e.DecreaseFontSize()
		}
		size := e.State().FontSize
		if size < style.MinFontSize || size > style.MaxFontSize {
			t.Fatalf("step %d: size %d out of range", i, size)
		}
		diff := size - prev
		atBound := (diff == 0) && (size == style.MinFontSize || size == style.MaxFontSize)
		if diff != 2 && diff != -2 && !atBound {
			t.Fatalf("step %d: size changed by %d", i, diff)
		}
		prev = size
	}
	if e.History().Len() != 81 {
		t.Errorf("history len = %d, want 81 (clamped steps still record)", e.History().Len())
	}
}

func TestIncreaseAtCeilingStillRecords(t *testing.T) {
	initial := style.Default()
	initial.FontSize = style.MaxFontSize
	e := NewEditor(initial, history.Options{})
	e.IncreaseFontSize()
	if e.State().FontSize != style.MaxFontSize {
		t.Errorf("size = %d", e.State().FontSize)
	}
	if e.History().Len() != 2 {
		t.Errorf("history len = %d, want 2", e.History().Len())
	}
}

func TestScenarioSizeUndoRedo(t *testing.T) {
	e := newTestEditor()
	e.IncreaseFontSize()
	e.IncreaseFontSize()

	if got := e.State().FontSize; got != 20 {
		t.Fatalf("size = %d, want 20", got)
	}
	if got := e.History().Len(); got != 3 {
		t.Fatalf("history len = %d, want 3", got)
	}

	e.Undo()
	if got := e.State().FontSize; got != 18 {
		t.Errorf("after undo size = %d, want 18", got)
	}
	e.Undo()
	if got := e.State().FontSize; got != 16 {
		t.Errorf("after 2nd undo size = %d, want 16", got)
	}
	e.Redo()
	if got := e.State().FontSize; got != 18 {
		t.Errorf("after redo size = %d, want 18", got)
	}
}

func TestScenarioColorChange(t *testing.T) {
	e := newTestEditor()
	before := e.State()

	if err := e.SetColor("#ff0000"); err != nil {
		t.Fatal(err)
	}
	got := e.State()
	if got.Color != "#ff0000" {
		t.Errorf("color = %s", got.Color)
	}

	entries := e.History().Entries()
	if len(entries) != 2 {
		t.Fatalf("history len = %d, want 2", len(entries))
	}
	last := entries[1].State
	want := before
	want.Color = "#ff0000"
	if last != want {
		t.Errorf("snapshot = %+v, want %+v", last, want)
	}
}

func TestScenarioTypingRecordsPerKeystroke(t *testing.T) {
	e := newTestEditor()
	e.SetText("H")
	e.SetText("Hi")

	entries := e.History().Entries()
	if len(entries) != 3 {
		t.Fatalf("history len = %d, want 3", len(entries))
	}
	for i, text := range []string{"H", "Hi"} {
		snap := entries[i+1].State
		if snap.Text != text {
			t.Errorf("entry %d text = %q, want %q", i+1, snap.Text, text)
		}
		if snap.FontFamily != "Arial" || snap.FontSize != 16 || snap.Color != "#000000" {
			t.Errorf("entry %d is not a full snapshot: %+v", i+1, snap)
		}
	}
}

func TestUndoRestoresAllFields(t *testing.T) {
	edits := []struct {
		name string
		do   func(e *Editor)
	}{
		{"font", func(e *Editor) { _ = e.SetFontFamily("Verdana") }},
		{"size up", func(e *Editor) { e.IncreaseFontSize() }},
		{"size down", func(e *Editor) { e.DecreaseFontSize() }},
		{"color", func(e *Editor) { _ = e.SetColor("#123456") }},
		{"text", func(e *Editor) { e.SetText("changed") }},
	}
	for _, tt := range edits {
		t.Run(tt.name, func(t *testing.T) {
			start := style.State{FontFamily: "cursive", FontSize: 30, Color: "#abcdef", Text: "start"}
			e := NewEditor(start, history.Options{})
			tt.do(e)
			after := e.State()

			if !e.Undo() {
				t.Fatal("undo reported no-op")
			}
			if got := e.State(); got != start {
				t.Errorf("after undo = %+v, want %+v", got, start)
			}
			if !e.Redo() {
				t.Fatal("redo reported no-op")
			}
			if got := e.State(); got != after {
				t.Errorf("after redo = %+v, want %+v", got, after)
			}
		})
	}
}

func TestUndoRedoNoOpAtBounds(t *testing.T) {
	e := newTestEditor()
	before := e.State()
	if e.Undo() {
		t.Error("undo at cursor 0 reported a move")
	}
	if e.State() != before {
		t.Error("undo at cursor 0 changed state")
	}

	e.SetText("x")
	at := e.State()
	if e.Redo() {
		t.Error("redo at last entry reported a move")
	}
	if e.State() != at {
		t.Error("redo at last entry changed state")
	}
}

func TestEditAfterUndoAppends(t *testing.T) {
	e := newTestEditor()
	e.IncreaseFontSize()
	e.IncreaseFontSize()
	e.Undo()
	e.Undo()
	e.SetText("new")

	h := e.History()
	if h.Len() != 4 || h.Cursor() != 3 {
		t.Errorf("len=%d cursor=%d, want 4,3", h.Len(), h.Cursor())
	}
	st := e.State()
	if st.FontSize != 16 || st.Text != "new" {
		t.Errorf("state = %+v", st)
	}
}

func TestTruncatePolicy(t *testing.T) {
	e := NewEditor(style.Default(), history.Options{Policy: history.PolicyTruncate})
	e.IncreaseFontSize()
	e.IncreaseFontSize()
	e.Undo()
	e.SetText("new")
	if e.History().Len() != 3 {
		t.Errorf("len = %d, want 3", e.History().Len())
	}
	if e.CanRedo() {
		t.Error("redo branch survived")
	}
}

func TestInvalidInputs(t *testing.T) {
	e := newTestEditor()
	if err := e.SetFontFamily("Wingdings"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("SetFontFamily error = %v, want ErrUnknownFont", err)
	}
	if err := e.SetColor("not-a-color"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("SetColor error = %v, want ErrInvalidColor", err)
	}
	if e.History().Len() != 1 {
		t.Errorf("rejected input recorded history: len %d", e.History().Len())
	}
}

func TestSetFontFamilyCanonicalises(t *testing.T) {
	e := newTestEditor()
	if err := e.SetFontFamily("courier new"); err != nil {
		t.Fatal(err)
	}
	if got := e.State().FontFamily; got != "Courier New" {
		t.Errorf("family = %q", got)
	}
}

func TestEventsDispatched(t *testing.T) {
	e := newTestEditor()
	bus := event.NewManager()
	e.SetEventManager(bus)

	var changed []event.StyleChangedData
	var moved []event.HistoryMovedData
	bus.Subscribe(event.TypeStyleChanged, func(ev event.Event) bool {
		changed = append(changed, ev.Data.(event.StyleChangedData))
		// Handlers may call back into the editor.
		_ = e.State()
		return false
	})
	bus.Subscribe(event.TypeHistoryMoved, func(ev event.Event) bool {
		moved = append(moved, ev.Data.(event.HistoryMovedData))
		return false
	})

	e.IncreaseFontSize()
	e.Undo()
	e.Undo() // no-op, no event

	if len(changed) != 1 || changed[0].Kind != history.ChangeFontSize || changed[0].State.FontSize != 18 {
		t.Errorf("changed = %+v", changed)
	}
	if len(moved) != 1 || moved[0].Direction != event.DirectionUndo || moved[0].Cursor != 0 || moved[0].Len != 2 {
		t.Errorf("moved = %+v", moved)
	}
}

func TestLabelDragClampedToBounds(t *testing.T) {
	e := newTestEditor()
	bounds := types.Rect{X: 10, Y: 5, W: 20, H: 6}
	e.SetBounds(bounds)

	// "New Text" is 8 cells wide; first placement centres it.
	if got := e.LabelPosition(); got != (types.Point{X: 16, Y: 8}) {
		t.Fatalf("initial position = %v", got)
	}

	e.MoveLabel(100, 100)
	if got := e.LabelPosition(); got != (types.Point{X: 22, Y: 10}) {
		t.Errorf("after drag past corner = %v, want {22 10}", got)
	}
	e.MoveLabel(-100, -100)
	if got := e.LabelPosition(); got != (types.Point{X: 10, Y: 5}) {
		t.Errorf("after drag past origin = %v, want {10 5}", got)
	}
	if e.History().Len() != 1 {
		t.Error("drag recorded history")
	}
}

func TestLabelReclampedWhenItGrows(t *testing.T) {
	e := newTestEditor()
	e.SetBounds(types.Rect{X: 0, Y: 0, W: 12, H: 3})
	e.SetLabelPosition(types.Point{X: 4, Y: 1})

	var moves int
	bus := event.NewManager()
	bus.Subscribe(event.TypeLabelMoved, func(event.Event) bool { moves++; return false })
	e.SetEventManager(bus)

	e.SetText("0123456789") // 10 cells, must shift left to x=2
	if got := e.LabelPosition(); got != (types.Point{X: 2, Y: 1}) {
		t.Errorf("position = %v, want {2 1}", got)
	}
	if moves != 1 {
		t.Errorf("label move events = %d, want 1", moves)
	}

	// Shrinking the canvas re-clamps as well.
	e.SetBounds(types.Rect{X: 0, Y: 0, W: 10, H: 1})
	if got := e.LabelPosition(); got != (types.Point{X: 0, Y: 0}) {
		t.Errorf("after shrink = %v", got)
	}
}

func TestCloseTearsDown(t *testing.T) {
	e := newTestEditor()
	e.SetText("x")
	e.Close()
	if e.History().Len() != 1 {
		t.Errorf("history len after close = %d", e.History().Len())
	}
	edits := map[string]func() error{
		"color":    func() error { return e.SetColor("#ffffff") },
		"font":     func() error { return e.SetFontFamily("Verdana") },
		"increase": e.IncreaseFontSize,
		"decrease": e.DecreaseFontSize,
		"text":     func() error { return e.SetText("y") },
	}
	for name, edit := range edits {
		if err := edit(); !errors.Is(err, ErrClosed) {
			t.Errorf("%s after close error = %v, want ErrClosed", name, err)
		}
	}
	if e.State() != style.Default() || e.History().Len() != 1 {
		t.Errorf("closed editor changed: %+v, len %d", e.State(), e.History().Len())
	}
	if e.Undo() {
		t.Error("undo after close reported a move")
	}
	e.Close() // idempotent
}
