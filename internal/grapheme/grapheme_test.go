package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestBoundaries_RuneOffsets(t *testing.T) {
	text := "a" + "e\u0301" + "b"
	got := Boundaries(text)
	want := []int{0, 1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("boundaries=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("boundaries=%v, want %v", got, want)
		}
	}

	if got := Boundaries(""); len(got) != 1 || got[0] != 0 {
		t.Fatalf("boundaries of empty text=%v, want [0]", got)
	}
}

func TestPrevNextSnap(t *testing.T) {
	text := "a" + "e\u0301" + "b"

	cases := []struct {
		name string
		fn   func(string, int) int
		col  int
		want int
	}{
		{name: "prev from end", fn: Prev, col: 4, want: 3},
		{name: "prev over cluster", fn: Prev, col: 3, want: 1},
		{name: "prev at start", fn: Prev, col: 0, want: 0},
		{name: "next over cluster", fn: Next, col: 1, want: 3},
		{name: "next at end", fn: Next, col: 4, want: 4},
		{name: "snap inside cluster", fn: Snap, col: 2, want: 1},
		{name: "snap on boundary", fn: Snap, col: 3, want: 3},
	}

	for _, tc := range cases {
		if got := tc.fn(text, tc.col); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if IsSpace("") {
		t.Fatalf("empty cluster should not be space")
	}
}
