package buffer

import "testing"

func TestBuffer_Apply_UsesEditCaret(t *testing.T) {
	b := New("if x:{}", Options{})

	d := b.Apply(Edit{Range: Collapsed(6), Text: "\n    \n", Caret: 11})
	if got, want := d.Text, "if x:{\n    \n}"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.PosFromOffset(d.Caret); got != (Pos{Row: 1, Col: 4}) {
		t.Fatalf("cursor=%v, want (1,4)", got)
	}
}

func TestBuffer_ApplyAll_AppliesSequentiallyAgainstEvolvingState(t *testing.T) {
	b := New("hello", Options{})

	b.ApplyAll(
		Edit{Range: Collapsed(0), Text: "X", Caret: 1},
		Edit{Range: Range{Start: 1, End: 2}, Text: "", Caret: 1},
	)

	if got, want := b.Text(), "Xello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := b.Caret(); got != 1 {
		t.Fatalf("caret=%d, want 1", got)
	}
	if undo, _ := b.History().Len(); undo != 2 {
		t.Fatalf("undo depth=%d, want 2", undo)
	}
}
