package layout

// Insets are the row paddings.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Metrics holds the fixed constants of a review row.
type Metrics struct {
	Insets        Insets
	Avatar        Size
	AvatarGap     float64 // avatar to text column
	NameHeight    float64
	NameRatingGap float64
	RatingHeight  float64
	RatingTextGap float64
	TextGap       float64 // body to expand control, or body to timestamp
	ExpandGap     float64 // expand control to timestamp

	CountRowHeight float64

	BodyFont    Font
	ExpandFont  Font
	CreatedFont Font
	ExpandLabel string
}

// DefaultMetrics returns the point-based metrics of a phone-sized list.
func DefaultMetrics() Metrics {
	return Metrics{
		Insets:         Insets{Top: 9, Left: 12, Bottom: 9, Right: 12},
		Avatar:         Size{Width: 36, Height: 36},
		AvatarGap:      10,
		NameHeight:     20,
		NameRatingGap:  6,
		RatingHeight:   20,
		RatingTextGap:  8,
		TextGap:        6,
		ExpandGap:      6,
		CountRowHeight: 44,
		BodyFont:       Font{Name: "body", Advance: 8, LineHeight: 18},
		ExpandFont:     Font{Name: "button", Advance: 8, LineHeight: 18},
		CreatedFont:    Font{Name: "caption", Advance: 7, LineHeight: 16},
		ExpandLabel:    "Show more…",
	}
}

// CellMetrics returns metrics for a terminal where one unit is one cell.
func CellMetrics() Metrics {
	cell := Font{Name: "cell", Advance: 1, LineHeight: 1}
	return Metrics{
		Insets:         Insets{Top: 1, Left: 1, Bottom: 0, Right: 1},
		Avatar:         Size{Width: 4, Height: 2},
		AvatarGap:      2,
		NameHeight:     1,
		RatingHeight:   1,
		CountRowHeight: 2,
		BodyFont:       cell,
		ExpandFont:     cell,
		CreatedFont:    cell,
		ExpandLabel:    "Show more…",
	}
}
