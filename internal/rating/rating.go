// Package rating turns integer review ratings into star indicators.
package rating

import "strings"

// Indicator is a rendered rating.
type Indicator struct {
	Value  int // clamped rating
	Max    int
	Filled string
	Empty  string
}

// String returns the full indicator, filled glyphs first.
func (i Indicator) String() string {
	return i.Filled + i.Empty
}

// Renderer renders ratings on a fixed scale.
type Renderer struct {
	max    int
	filled string
	empty  string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithGlyphs overrides the filled and empty glyphs.
func WithGlyphs(filled, empty string) Option {
	return func(r *Renderer) {
		r.filled = filled
		r.empty = empty
	}
}

// NewRenderer returns a renderer for ratings 1..scale. A non-positive scale
// falls back to 5.
func NewRenderer(scale int, opts ...Option) *Renderer {
	if scale <= 0 {
		scale = 5
	}
	r := &Renderer{max: scale, filled: "★", empty: "☆"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render clamps rating into [0, Max] and renders it. Out-of-range input is
// a caller error but never fatal: values below 1 render all-empty.
func (r *Renderer) Render(rating int) Indicator {
	v := min(max(rating, 0), r.max)
	return Indicator{
		Value:  v,
		Max:    r.max,
		Filled: strings.Repeat(r.filled, v),
		Empty:  strings.Repeat(r.empty, r.max-v),
	}
}
