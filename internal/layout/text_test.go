package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var cell = Font{Name: "cell", Advance: 1, LineHeight: 1}

func TestFontColumns(t *testing.T) {
	tests := []struct {
		name  string
		font  Font
		width float64
		want  int
	}{
		{"exact fit", Font{Advance: 8}, 80, 10},
		{"partial glyph dropped", Font{Advance: 8}, 87.9, 10},
		{"narrower than one glyph", Font{Advance: 8}, 3, 1},
		{"zero width", Font{Advance: 8}, 0, 1},
		{"zero advance", Font{}, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.font.Columns(tt.width))
		})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"word wrap", "hello world", 5, []string{"hello", "world"}},
		{"keeps newlines", "a\nb", 10, []string{"a", "b"}},
		{"hard wraps long words", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.text, cell, tt.width))
		})
	}
}

func TestMeasureText(t *testing.T) {
	font := Font{Advance: 2, LineHeight: 3}

	tests := []struct {
		name     string
		text     string
		width    float64
		maxLines int
		want     Size
	}{
		{"single line", "abc", 20, 0, Size{Width: 6, Height: 3}},
		{"wrapped unbounded", "aaaa bbbb cccc", 8, 0, Size{Width: 8, Height: 9}},
		{"wrapped clamped", "aaaa bbbb cccc", 8, 2, Size{Width: 8, Height: 6}},
		{"clamp larger than text", "abc", 20, 5, Size{Width: 6, Height: 3}},
		{"empty keeps one line", "", 20, 0, Size{Width: 0, Height: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MeasureText(tt.text, font, tt.width, tt.maxLines))
		})
	}
}

func TestMeasureLabelDoesNotWrap(t *testing.T) {
	got := MeasureLabel("Show more…", cell)
	assert.Equal(t, Size{Width: 10, Height: 1}, got)
}
