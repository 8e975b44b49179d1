package export

import (
	"testing"

	"github.com/l0rn0r/pagexml-hf/model"
)

func makeLines(ids ...string) []model.Line {
	lines := make([]model.Line, len(ids))
	for i, id := range ids {
		lines[i] = model.Line{ID: id}
	}
	return lines
}

func windowIDs(windows [][]model.Line) [][]string {
	out := make([][]string, len(windows))
	for i, w := range windows {
		for _, l := range w {
			out[i] = append(out[i], l.ID)
		}
	}
	return out
}

func TestSlidingWindowsOverlap(t *testing.T) {
	// size=2, overlap=1 over five lines: step 1, last start index 3.
	windows := SlidingWindows(makeLines("A", "B", "C", "D", "E"), 2, 1)

	want := [][]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}}
	got := windowIDs(windows)

	if len(got) != len(want) {
		t.Fatalf("got %d windows %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("window %d = %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("window %d = %v, want %v", i, got[i], want[i])
			}
		}
	}
}

func TestSlidingWindowsTrailingPartial(t *testing.T) {
	// size=3, overlap=0 over seven lines: a short trailing window remains.
	windows := SlidingWindows(makeLines("1", "2", "3", "4", "5", "6", "7"), 3, 0)

	got := windowIDs(windows)
	if len(got) != 3 {
		t.Fatalf("got %d windows %v, want 3", len(got), got)
	}
	if len(got[0]) != 3 || len(got[1]) != 3 || len(got[2]) != 1 {
		t.Errorf("window sizes = %d/%d/%d, want 3/3/1", len(got[0]), len(got[1]), len(got[2]))
	}
	if got[2][0] != "7" {
		t.Errorf("trailing window = %v, want [7]", got[2])
	}
}

func TestSlidingWindowsExactMultiple(t *testing.T) {
	windows := SlidingWindows(makeLines("1", "2", "3", "4"), 2, 0)
	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}
}

func TestSlidingWindowsSingleLine(t *testing.T) {
	windows := SlidingWindows(makeLines("only"), 3, 1)
	if len(windows) != 1 || len(windows[0]) != 1 {
		t.Fatalf("windows = %v", windowIDs(windows))
	}
}

func TestSlidingWindowsEmpty(t *testing.T) {
	if windows := SlidingWindows(nil, 2, 1); windows != nil {
		t.Errorf("expected no windows, got %v", windowIDs(windows))
	}
}
