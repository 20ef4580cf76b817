package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// segment is a run of text placed at a column.
type segment struct {
	x     int
	text  string
	style lipgloss.Style
}

// canvas is a fixed-size grid of lines that elements are placed on by
// frame. Its height never changes after creation.
type canvas struct {
	width int
	rows  [][]segment
}

func newCanvas(width, height int) *canvas {
	return &canvas{width: max(width, 0), rows: make([][]segment, max(height, 0))}
}

func (c *canvas) height() int {
	return len(c.rows)
}

// put places text at (x, y). Text is clipped at the right edge; anything
// outside the canvas is dropped.
func (c *canvas) put(x, y int, text string, style lipgloss.Style) {
	if y < 0 || y >= len(c.rows) || x < 0 || x >= c.width || text == "" {
		return
	}
	if lipgloss.Width(text) > c.width-x {
		text = truncStr(text, c.width-x)
	}
	c.rows[y] = append(c.rows[y], segment{x: x, text: text, style: style})
}

// fill paints a w×h block of blanks in style.
func (c *canvas) fill(x, y, w, h int, style lipgloss.Style) {
	for dy := 0; dy < h; dy++ {
		c.put(x, y+dy, strings.Repeat(" ", max(w, 0)), style)
	}
}

// lines renders every row padded to the canvas width. Overlapping segments
// keep the leftmost text.
func (c *canvas) lines() []string {
	out := make([]string, len(c.rows))
	for y, segs := range c.rows {
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].x < segs[j].x })

		var b strings.Builder
		col := 0
		for _, s := range segs {
			text := s.text
			if s.x < col {
				skip := col - s.x
				runes := []rune(text)
				if skip >= len(runes) {
					continue
				}
				text = string(runes[skip:])
			} else {
				b.WriteString(strings.Repeat(" ", s.x-col))
				col = s.x
			}
			b.WriteString(s.style.Render(text))
			col += lipgloss.Width(text)
		}
		if col < c.width {
			b.WriteString(strings.Repeat(" ", c.width-col))
		}
		out[y] = b.String()
	}
	return out
}
