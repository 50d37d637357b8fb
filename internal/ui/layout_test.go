package ui

import "testing"

func TestWindow(t *testing.T) {
	cases := []struct {
		name              string
		n, focus, h       int
		wantStart, wantAt int
	}{
		{"fits entirely", 5, 2, 10, 0, 5},
		{"exact fit", 5, 4, 5, 0, 5},
		{"centred in middle", 20, 10, 5, 8, 13},
		{"clamped at top", 20, 0, 5, 0, 5},
		{"clamped near top", 20, 1, 5, 0, 5},
		{"clamped at bottom", 20, 19, 5, 15, 20},
		{"clamped near bottom", 20, 18, 5, 15, 20},
		{"single row", 20, 7, 1, 7, 8},
		{"focus out of range high", 20, 99, 5, 15, 20},
		{"focus out of range low", 20, -3, 5, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := Window(tc.n, tc.focus, tc.h)
			if start != tc.wantStart || end != tc.wantAt {
				t.Fatalf("Window(%d, %d, %d) = [%d, %d), want [%d, %d)",
					tc.n, tc.focus, tc.h, start, end, tc.wantStart, tc.wantAt)
			}
		})
	}
}

func TestWindowDegenerate(t *testing.T) {
	if s, e := Window(0, 0, 5); s != 0 || e != 0 {
		t.Fatalf("empty list: got [%d, %d)", s, e)
	}
	if s, e := Window(10, 3, 0); s != 0 || e != 0 {
		t.Fatalf("zero height: got [%d, %d)", s, e)
	}
	if s, e := Window(10, 3, -2); s != 0 || e != 0 {
		t.Fatalf("negative height: got [%d, %d)", s, e)
	}
}

func TestWindowContainsFocus(t *testing.T) {
	for n := 1; n <= 30; n++ {
		for h := 1; h <= 10; h++ {
			for focus := 0; focus < n; focus++ {
				start, end := Window(n, focus, h)
				if focus < start || focus >= end {
					t.Fatalf("Window(%d, %d, %d) = [%d, %d) excludes focus", n, focus, h, start, end)
				}
				if end-start != min(n, h) {
					t.Fatalf("Window(%d, %d, %d) = [%d, %d): wrong size", n, focus, h, start, end)
				}
				if start < 0 || end > n {
					t.Fatalf("Window(%d, %d, %d) = [%d, %d): out of bounds", n, focus, h, start, end)
				}
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer string", 8, "a longe…"},
		{"héllo wörld", 6, "héllo…"},
		{"x", 1, "x"},
		{"xy", 1, "…"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Fatalf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("PadRight should not truncate: %q", got)
	}
}
