package layout

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Font describes a monospaced font: the advance of one glyph cell and the
// height of one line.
type Font struct {
	Name       string
	Advance    float64
	LineHeight float64
}

// Size is a width/height pair.
type Size struct {
	Width  float64
	Height float64
}

// Columns returns how many glyph cells fit into width. Always at least 1.
func (f Font) Columns(width float64) int {
	if f.Advance <= 0 || width <= 0 {
		return 1
	}
	n := int(math.Floor(width/f.Advance + 1e-9))
	if n < 1 {
		return 1
	}
	return n
}

// WrapText wraps text to the columns that fit into maxWidth. Renderers paint
// these exact lines so painted and measured sizes never drift.
func WrapText(text string, font Font, maxWidth float64) []string {
	wrapped := lipgloss.NewStyle().Width(font.Columns(maxWidth)).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// MeasureText returns the size of text wrapped at maxWidth. When maxLines is
// positive only the first maxLines lines count; zero means unbounded.
func MeasureText(text string, font Font, maxWidth float64, maxLines int) Size {
	return measureLines(WrapText(text, font, maxWidth), font, maxLines)
}

// MeasureLabel returns the size of text laid out without wrapping.
func MeasureLabel(text string, font Font) Size {
	return measureLines(strings.Split(text, "\n"), font, 0)
}

func measureLines(lines []string, font Font, maxLines int) Size {
	n := len(lines)
	if maxLines > 0 && n > maxLines {
		n = maxLines
	}
	widest := 0
	for _, line := range lines[:n] {
		if w := lipgloss.Width(line); w > widest {
			widest = w
		}
	}
	return Size{
		Width:  float64(widest) * font.Advance,
		Height: float64(n) * font.LineHeight,
	}
}
