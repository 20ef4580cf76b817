package layout

// Rect is a frame inside a row, relative to the row's top-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Content is the part of a review row that drives its layout.
type Content struct {
	Text     string
	MaxLines int // 0 = unlimited
	Created  string
}

// Row is the computed layout of one review row.
type Row struct {
	Height        float64
	Avatar        Rect
	Name          Rect
	Rating        Rect
	Body          Rect
	Expand        Rect
	Timestamp     Rect
	ExpandVisible bool
	BodyLines     int // lines shown in Body
}

// Engine computes review row layouts for a set of metrics.
type Engine struct {
	metrics Metrics
}

// NewEngine returns an engine for the given metrics.
func NewEngine(m Metrics) *Engine {
	return &Engine{metrics: m}
}

// Metrics returns the engine's metrics.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// ColumnWidth returns the width of the text column for a row of maxWidth.
func (e *Engine) ColumnWidth(maxWidth float64) float64 {
	m := e.metrics
	w := maxWidth - m.Insets.Left - m.Insets.Right - m.Avatar.Width - m.AvatarGap
	if w < 0 {
		return 0
	}
	return w
}

// Compute lays out a review row at maxWidth.
func (e *Engine) Compute(c Content, maxWidth float64) Row {
	m := e.metrics

	var r Row
	r.Avatar = Rect{X: m.Insets.Left, Y: m.Insets.Top, Width: m.Avatar.Width, Height: m.Avatar.Height}

	colX := r.Avatar.MaxX() + m.AvatarGap
	colW := e.ColumnWidth(maxWidth)

	r.Name = Rect{X: colX, Y: r.Avatar.Y, Width: colW, Height: m.NameHeight}
	r.Rating = Rect{X: colX, Y: r.Name.MaxY() + m.NameRatingGap, Width: colW, Height: m.RatingHeight}

	lines := WrapText(displayText(c.Text), m.BodyFont, colW)
	shown := measureLines(lines, m.BodyFont, c.MaxLines)
	full := measureLines(lines, m.BodyFont, 0)
	r.Body = Rect{X: colX, Y: r.Rating.MaxY() + m.RatingTextGap, Width: shown.Width, Height: shown.Height}
	r.BodyLines = len(lines)
	if c.MaxLines > 0 && r.BodyLines > c.MaxLines {
		r.BodyLines = c.MaxLines
	}

	cursor := r.Body.MaxY() + m.TextGap
	if c.MaxLines != 0 && full.Height > shown.Height {
		label := MeasureLabel(m.ExpandLabel, m.ExpandFont)
		r.Expand = Rect{X: colX, Y: cursor, Width: label.Width, Height: label.Height}
		r.ExpandVisible = true
		cursor = r.Expand.MaxY() + m.ExpandGap
	}

	created := MeasureText(c.Created, m.CreatedFont, colW, 0)
	r.Timestamp = Rect{X: colX, Y: cursor, Width: created.Width, Height: created.Height}

	r.Height = max(r.Avatar.MaxY(), r.Timestamp.MaxY()) + m.Insets.Bottom
	return r
}

// Lines returns the body lines a row of maxWidth shows, in paint order.
func (e *Engine) Lines(c Content, maxWidth float64) []string {
	lines := WrapText(displayText(c.Text), e.metrics.BodyFont, e.ColumnWidth(maxWidth))
	if c.MaxLines > 0 && len(lines) > c.MaxLines {
		lines = lines[:c.MaxLines]
	}
	return lines
}

// displayText keeps empty bodies one line tall.
func displayText(text string) string {
	if text == "" {
		return " "
	}
	return text
}
