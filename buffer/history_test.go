package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Caret(); got != 0 {
		t.Fatalf("caret=%d, want 0", got)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Caret(); got != 1 {
		t.Fatalf("caret=%d, want 1", got)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	b.SetCaret(1)

	text := b.Text()
	caret := b.Caret()
	v := b.Version()

	if ok := b.Undo(); ok {
		t.Fatalf("expected Undo=false")
	}
	if ok := b.Redo(); ok {
		t.Fatalf("expected Redo=false")
	}

	if got := b.Text(); got != text {
		t.Fatalf("text=%q, want %q", got, text)
	}
	if got := b.Caret(); got != caret {
		t.Fatalf("caret=%d, want %d", got, caret)
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_Undo_RestoresCaretAndSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: 1, End: 4}) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Caret(); got != 4 {
		t.Fatalf("caret=%d, want 4", got)
	}
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection restored")
	}
	if want := (Range{Start: 1, End: 4}); r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.InsertText("b")

	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true after undo")
	}

	b.InsertText("c")
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false after a new edit")
	}
	if ok := b.Redo(); ok {
		t.Fatalf("expected Redo to be a no-op")
	}
	if got, want := b.Text(), "ac"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_CaretMovementIsNotRecorded(t *testing.T) {
	b := New("abc", Options{})
	b.SetCaret(2)
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	b.SetSelection(Range{Start: 0, End: 3})

	if b.CanUndo() {
		t.Fatalf("caret movement must not record history")
	}
}

func TestHistory_LimitDropsOldest(t *testing.T) {
	b := New("", Options{HistoryLimit: 3})
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		b.InsertText(s)
	}

	undone := 0
	for b.Undo() {
		undone++
	}
	if undone != 3 {
		t.Fatalf("undo count=%d, want 3", undone)
	}
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestHistory_DefaultLimit(t *testing.T) {
	b := New("", Options{})
	for i := 0; i < DefaultHistoryLimit+20; i++ {
		b.InsertText("x")
	}
	if undo, _ := b.History().Len(); undo != DefaultHistoryLimit {
		t.Fatalf("undo depth=%d, want %d", undo, DefaultHistoryLimit)
	}
}

func TestHistory_NegativeLimitDisablesRecording(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected history disabled")
	}
}

func TestHistory_StacksStayDisjoint(t *testing.T) {
	h := NewHistory(10)
	h.RecordBeforeEdit(Snapshot{Text: "1"})
	h.RecordBeforeEdit(Snapshot{Text: "2"})

	prev, ok := h.Undo(Snapshot{Text: "3"})
	if !ok || prev.Text != "2" {
		t.Fatalf("undo=%v,%v want \"2\",true", prev.Text, ok)
	}
	if undo, redo := h.Len(); undo != 1 || redo != 1 {
		t.Fatalf("depths=(%d,%d), want (1,1)", undo, redo)
	}

	next, ok := h.Redo(prev)
	if !ok || next.Text != "3" {
		t.Fatalf("redo=%v,%v want \"3\",true", next.Text, ok)
	}
	if undo, redo := h.Len(); undo != 2 || redo != 0 {
		t.Fatalf("depths=(%d,%d), want (2,0)", undo, redo)
	}
}
