package tui

import (
	"github.com/naveenspark/reviews/internal/layout"
	"github.com/naveenspark/reviews/internal/reviews"
)

// listModel is a virtualized view over the controller's rows. Offsets are
// in lines; row heights come from the controller at the current width.
type listModel struct {
	ctrl    *reviews.Controller
	metrics layout.Metrics
	offset  int // first visible line
	cursor  int // selected row
	width   int
	height  int
}

func newListModel(ctrl *reviews.Controller) listModel {
	return listModel{ctrl: ctrl, metrics: ctrl.Deps().Engine.Metrics()}
}

func (m listModel) rowHeight(i int) int {
	return cells(m.ctrl.RowHeight(i, float64(m.width)))
}

func (m listModel) contentHeight() int {
	total := 0
	for i := 0; i < m.ctrl.RowCount(); i++ {
		total += m.rowHeight(i)
	}
	return total
}

func (m listModel) rowTop(idx int) int {
	top := 0
	for i := 0; i < idx && i < m.ctrl.RowCount(); i++ {
		top += m.rowHeight(i)
	}
	return top
}

// rowAt returns the row covering line, or the last row past the end.
func (m listModel) rowAt(line int) int {
	top := 0
	n := m.ctrl.RowCount()
	for i := 0; i < n; i++ {
		h := m.rowHeight(i)
		if line < top+h {
			return i
		}
		top += h
	}
	return max(n-1, 0)
}

func (m listModel) maxOffset() int {
	return max(m.contentHeight()-m.height, 0)
}

// clamp keeps offset and cursor inside the current content.
func (m listModel) clamp() listModel {
	m.cursor = clampInt(m.cursor, 0, m.ctrl.RowCount()-1)
	m.offset = clampInt(m.offset, 0, m.maxOffset())
	return m
}

// scrollBy moves the viewport and drags the cursor along when it leaves.
func (m listModel) scrollBy(lines int) listModel {
	m.offset = clampInt(m.offset+lines, 0, m.maxOffset())
	top := m.rowTop(m.cursor)
	if top+m.rowHeight(m.cursor) <= m.offset || top >= m.offset+m.height {
		m.cursor = m.rowAt(m.offset)
	}
	return m
}

// moveCursor selects another row and scrolls it into view.
func (m listModel) moveCursor(delta int) listModel {
	m.cursor = clampInt(m.cursor+delta, 0, m.ctrl.RowCount()-1)
	return m.ensureCursorVisible()
}

func (m listModel) top() listModel {
	m.cursor = 0
	m.offset = 0
	return m
}

func (m listModel) bottom() listModel {
	m.cursor = max(m.ctrl.RowCount()-1, 0)
	m.offset = m.maxOffset()
	return m
}

func (m listModel) ensureCursorVisible() listModel {
	top := m.rowTop(m.cursor)
	bottom := top + m.rowHeight(m.cursor)
	switch {
	case top < m.offset:
		m.offset = top
	case bottom > m.offset+m.height:
		m.offset = min(bottom-m.height, top)
	}
	m.offset = clampInt(m.offset, 0, m.maxOffset())
	return m
}

// rowItem returns row i when it is a review.
func (m listModel) rowItem(i int) (reviews.ReviewRow, bool) {
	return m.ctrl.Review(i)
}

// lines paints the rows that intersect the viewport and returns exactly
// height lines.
func (m listModel) lines() []string {
	out := make([]string, 0, m.height)
	end := m.offset + m.height
	top := 0
	for i := 0; i < m.ctrl.RowCount() && top < end; i++ {
		h := m.rowHeight(i)
		if top+h > m.offset {
			p := &rowPainter{width: m.width, metrics: m.metrics, selected: i == m.cursor}
			m.ctrl.Render(i, p)
			from := max(m.offset-top, 0)
			to := min(h, end-top)
			out = append(out, p.out[from:to]...)
		}
		top += h
	}
	for len(out) < m.height {
		out = append(out, "")
	}
	return out
}
