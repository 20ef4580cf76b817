package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCanvasPlacesSegments(t *testing.T) {
	cv := newCanvas(10, 2)
	cv.put(6, 0, "end", lipgloss.NewStyle())
	cv.put(1, 0, "ab", lipgloss.NewStyle())
	cv.put(0, 1, "x", lipgloss.NewStyle())

	lines := cv.lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != " ab   end " {
		t.Errorf("lines[0] = %q, want %q", lines[0], " ab   end ")
	}
	if lines[1] != "x         " {
		t.Errorf("lines[1] = %q, want %q", lines[1], "x         ")
	}
}

func TestCanvasClipsAtRightEdge(t *testing.T) {
	cv := newCanvas(6, 1)
	cv.put(2, 0, "overflowing", lipgloss.NewStyle())

	if got := cv.lines()[0]; got != "  ove…" {
		t.Errorf("line = %q, want %q", got, "  ove…")
	}
}

func TestCanvasDropsOutOfRange(t *testing.T) {
	cv := newCanvas(4, 1)
	cv.put(0, 1, "below", lipgloss.NewStyle())
	cv.put(0, -1, "above", lipgloss.NewStyle())
	cv.put(9, 0, "right", lipgloss.NewStyle())

	if got := cv.lines()[0]; got != "    " {
		t.Errorf("line = %q, want blank", got)
	}
}

func TestCanvasOverlapKeepsLeftmost(t *testing.T) {
	cv := newCanvas(6, 1)
	cv.put(0, 0, "abcd", lipgloss.NewStyle())
	cv.put(2, 0, "XYZ", lipgloss.NewStyle())

	if got := cv.lines()[0]; got != "abcdZ " {
		t.Errorf("line = %q, want %q", got, "abcdZ ")
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 1},
		{1.2, 2},
		{7.0000000001, 7},
	}
	for _, tt := range tests {
		if got := cells(tt.in); got != tt.want {
			t.Errorf("cells(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"Отличное", 4, "Отл…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncStr(tt.in, tt.max); got != tt.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestClampInt(t *testing.T) {
	if got := clampInt(5, 0, 3); got != 3 {
		t.Errorf("clampInt(5, 0, 3) = %d, want 3", got)
	}
	if got := clampInt(-1, 0, 3); got != 0 {
		t.Errorf("clampInt(-1, 0, 3) = %d, want 0", got)
	}
	if got := clampInt(2, 0, -1); got != 0 {
		t.Errorf("clampInt(2, 0, -1) = %d, want 0", got)
	}
}
