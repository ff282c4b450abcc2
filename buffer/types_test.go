package buffer

import "testing"

func TestComparePos(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 0, Col: 0}, Pos{Row: 1, Col: 0}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Row: 2, Col: 0}, Pos{Row: 1, Col: 999}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 1, Col: 0}, Pos{Row: 1, Col: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePos(Pos{Row: 3, Col: 4}, Pos{Row: 3, Col: 4}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: 9, End: 3})
	if r != (Range{Start: 3, End: 9}) {
		t.Fatalf("unexpected range: %#v", r)
	}
	if r2 := NormalizeRange(r); r2 != r {
		t.Fatalf("expected idempotent normalize: %#v != %#v", r2, r)
	}
	if got := r.Len(); got != 6 {
		t.Fatalf("len=%d, want 6", got)
	}
}

func TestClampRange(t *testing.T) {
	cases := []struct {
		in     Range
		length int
		want   Range
	}{
		{in: Range{Start: -1, End: -5}, length: 3, want: Range{Start: 0, End: 0}},
		{in: Range{Start: 999, End: 1}, length: 3, want: Range{Start: 1, End: 3}},
		{in: Range{Start: 1, End: 2}, length: 3, want: Range{Start: 1, End: 2}},
		{in: Range{Start: 4, End: 4}, length: 0, want: Range{Start: 0, End: 0}},
	}

	for _, tc := range cases {
		if got := ClampRange(tc.in, tc.length); got != tc.want {
			t.Fatalf("ClampRange(%v, %d) = %v, want %v", tc.in, tc.length, got, tc.want)
		}
	}
}
