package tui

import (
	"strings"

	"github.com/naveenspark/reviews/internal/layout"
	"github.com/naveenspark/reviews/internal/reviews"
)

// rowPainter draws one row onto a canvas sized from the row's layout, so a
// painted row is always exactly as tall as its measured height.
type rowPainter struct {
	width    int
	metrics  layout.Metrics
	selected bool
	out      []string
}

var _ reviews.Target = (*rowPainter)(nil)

func (p *rowPainter) RenderReview(row reviews.ReviewRow) {
	w := float64(p.width)
	l := row.Layout(w)
	cv := newCanvas(p.width, cells(l.Height))

	paintAvatar(cv, l.Avatar, row.Avatar.Initials)

	cv.put(cells(l.Name.X), cells(l.Name.Y), truncStr(row.Name, cells(l.Name.Width)), nameStyle)

	rx, ry := cells(l.Rating.X), cells(l.Rating.Y)
	cv.put(rx, ry, row.Rating.Filled, starStyle)
	cv.put(rx+row.Rating.Value, ry, row.Rating.Empty, emptyStarStyle)

	bodyStyle := normalStyle
	if p.selected {
		bodyStyle = selectedStyle.Bold(false)
	}
	for i, line := range row.Lines(w) {
		cv.put(cells(l.Body.X), cells(l.Body.Y)+i, line, bodyStyle)
	}

	if l.ExpandVisible {
		cv.put(cells(l.Expand.X), cells(l.Expand.Y), p.metrics.ExpandLabel, expandStyle)
	}

	for i, line := range layout.WrapText(row.Created, p.metrics.CreatedFont, l.Name.Width) {
		cv.put(cells(l.Timestamp.X), cells(l.Timestamp.Y)+i, line, metaStyle)
	}

	if p.selected {
		for y := 0; y < cv.height(); y++ {
			cv.put(0, y, "▌", accentStyle)
		}
	}
	p.out = cv.lines()
}

func (p *rowPainter) RenderCount(row reviews.CountRow) {
	cv := newCanvas(p.width, cells(row.Height(float64(p.width))))
	if cv.height() > 1 {
		cv.put(0, 0, strings.Repeat("─", p.width), ruleStyle)
	}
	pad := max((p.width-len([]rune(row.Text)))/2, 0)
	cv.put(pad, cv.height()-1, row.Text, countStyle)
	p.out = cv.lines()
}

// paintAvatar draws the initials tile that stands in for the picture.
func paintAvatar(cv *canvas, frame layout.Rect, initials string) {
	x, y := cells(frame.X), cells(frame.Y)
	w, h := cells(frame.Width), cells(frame.Height)
	style := avatarStyle(initials)

	label := truncStr(initials, w)
	pad := max((w-len([]rune(label)))/2, 0)
	line := strings.Repeat(" ", pad) + label
	line += strings.Repeat(" ", max(w-len([]rune(line)), 0))

	mid := (h - 1) / 2
	for dy := 0; dy < h; dy++ {
		if dy == mid {
			cv.put(x, y+dy, line, style)
			continue
		}
		cv.fill(x, y+dy, w, 1, style)
	}
}
