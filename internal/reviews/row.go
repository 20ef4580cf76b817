package reviews

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/naveenspark/reviews/internal/layout"
	"github.com/naveenspark/reviews/internal/rating"
	"github.com/naveenspark/reviews/pkg/domain"
)

// DefaultMaxLines is the body truncation limit of a new row.
const DefaultMaxLines = 3

// Item is one row of the list.
type Item interface {
	// Key is stable for the lifetime of the row.
	Key() string
	Height(width float64) float64
	Render(t Target)
	// Expand returns the row with truncation removed, or false when the
	// row cannot expand.
	Expand() (Item, bool)
}

// Target paints rows. Implemented by the list host.
type Target interface {
	RenderReview(row ReviewRow)
	RenderCount(row CountRow)
}

// Avatar references the author's picture.
type Avatar struct {
	URL      string
	Initials string
}

// ReviewRow is the display configuration of one review. It is a value:
// expanding produces a new row that replaces the old one.
type ReviewRow struct {
	ID       uuid.UUID
	Text     string
	Name     string
	Created  string
	Avatar   Avatar
	Rating   rating.Indicator
	MaxLines int // 0 = unlimited

	// OnExpand is called with ID when the row's expand control is used.
	OnExpand func(id uuid.UUID)

	engine *layout.Engine
}

// Deps are the shared collaborators rows are built with.
type Deps struct {
	Engine   *layout.Engine
	Ratings  *rating.Renderer
	MaxLines int
}

func (d Deps) withDefaults() Deps {
	if d.Engine == nil {
		d.Engine = layout.NewEngine(layout.DefaultMetrics())
	}
	if d.Ratings == nil {
		d.Ratings = rating.NewRenderer(domain.MaxRating)
	}
	if d.MaxLines <= 0 {
		d.MaxLines = DefaultMaxLines
	}
	return d
}

// NewReviewRow maps a raw review to a row with a fresh identity.
func NewReviewRow(r domain.Review, deps Deps, onExpand func(uuid.UUID)) ReviewRow {
	deps = deps.withDefaults()
	return ReviewRow{
		ID:       uuid.New(),
		Text:     formatText(r),
		Name:     formatName(r),
		Created:  formatCreated(r.Created),
		Avatar:   Avatar{URL: r.AvatarURL, Initials: formatInitials(r)},
		Rating:   deps.Ratings.Render(r.Rating),
		MaxLines: deps.MaxLines,
		OnExpand: onExpand,
		engine:   deps.Engine,
	}
}

// Key implements Item.
func (r ReviewRow) Key() string { return r.ID.String() }

// Content returns the layout input of the row.
func (r ReviewRow) Content() layout.Content {
	return layout.Content{Text: r.Text, MaxLines: r.MaxLines, Created: r.Created}
}

// Layout computes the row's frames at width.
func (r ReviewRow) Layout(width float64) layout.Row {
	return r.engine.Compute(r.Content(), width)
}

// Lines returns the body lines shown at width.
func (r ReviewRow) Lines(width float64) []string {
	return r.engine.Lines(r.Content(), width)
}

// Height implements Item.
func (r ReviewRow) Height(width float64) float64 {
	return r.Layout(width).Height
}

// Render implements Item.
func (r ReviewRow) Render(t Target) { t.RenderReview(r) }

// CanExpand reports whether the body is truncated at all.
func (r ReviewRow) CanExpand() bool { return r.MaxLines != 0 }

// Expand implements Item.
func (r ReviewRow) Expand() (Item, bool) {
	if !r.CanExpand() {
		return r, false
	}
	r.MaxLines = 0
	return r, true
}

// RequestExpand fires the row's expand callback.
func (r ReviewRow) RequestExpand() {
	if r.OnExpand != nil {
		r.OnExpand(r.ID)
	}
}

// countRowKey never collides with a uuid string.
const countRowKey = "count"

// CountRow is the terminal row showing the total number of reviews.
type CountRow struct {
	Text   string
	Total  int
	height float64
}

func newCountRow(total int, height float64) CountRow {
	return CountRow{Text: fmt.Sprintf("Total reviews: %d", total), Total: total, height: height}
}

// Key implements Item.
func (c CountRow) Key() string { return countRowKey }

// Height implements Item.
func (c CountRow) Height(float64) float64 { return c.height }

// Render implements Item.
func (c CountRow) Render(t Target) { t.RenderCount(c) }

// Expand implements Item. Count rows never expand.
func (c CountRow) Expand() (Item, bool) { return c, false }
