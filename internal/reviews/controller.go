package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/naveenspark/reviews/internal/logging"
	"github.com/naveenspark/reviews/pkg/domain"
)

// PageResult is the outcome of one provider call.
type PageResult struct {
	Offset int
	Limit  int
	Data   []byte
	Err    error

	generation int
}

// Controller owns the list state and drives pagination.
type Controller struct {
	provider   Provider
	deps       Deps
	observer   Observer
	log        zerolog.Logger
	multiplier float64
	timeout    time.Duration

	state      State
	generation int
	lastErr    error
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver sets the state observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithPageSize sets the page size. Non-positive values are ignored.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.state.PageSize = n
		}
	}
}

// WithLoadMultiplier sets the scroll trigger multiplier.
func WithLoadMultiplier(m float64) Option {
	return func(c *Controller) {
		if m > 0 {
			c.multiplier = m
		}
	}
}

// WithRequestTimeout bounds every provider call. Zero disables the bound.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// New returns a controller with an empty, loadable list.
func New(p Provider, deps Deps, opts ...Option) *Controller {
	c := &Controller{
		provider:   p,
		deps:       deps.withDefaults(),
		log:        logging.Component("reviews"),
		multiplier: DefaultLoadMultiplier,
		state:      State{PageSize: DefaultPageSize, ShouldLoad: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the list.
func (c *Controller) State() State {
	return c.state.clone()
}

// Deps returns the collaborators rows are built with.
func (c *Controller) Deps() Deps {
	return c.deps
}

// RequestNextPage asks the provider for the next page. It returns nil, and
// does nothing, unless the list is eligible to load. The returned channel
// receives exactly one result, which must be passed to OnPageResult.
func (c *Controller) RequestNextPage(ctx context.Context) <-chan PageResult {
	if !c.state.ShouldLoad {
		return nil
	}
	c.state.ShouldLoad = false

	offset, limit, gen := c.state.Offset, c.state.PageSize, c.generation
	provider, timeout := c.provider, c.timeout
	c.log.Debug().Int("offset", offset).Int("limit", limit).Msg("requesting page")

	out := make(chan PageResult, 1)
	go func() {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		data, err := provider.GetReviews(ctx, offset, limit)
		out <- PageResult{Offset: offset, Limit: limit, Data: data, Err: err, generation: gen}
	}()
	return out
}

// MaybeRequestNextPage requests the next page when a scroll coming to rest
// at targetOffset is within the load threshold.
func (c *Controller) MaybeRequestNextPage(ctx context.Context, viewportHeight, contentHeight, targetOffset float64) <-chan PageResult {
	if !ShouldLoadMore(viewportHeight, contentHeight, targetOffset, c.multiplier) {
		return nil
	}
	return c.RequestNextPage(ctx)
}

// OnPageResult applies a provider result. On failure the list stays as it
// was and becomes loadable again; on success the mapped rows are appended
// and, once the feed is exhausted, a single count row closes the list.
// Results issued before the last Reset are dropped.
func (c *Controller) OnPageResult(res PageResult) {
	if res.generation != c.generation {
		c.log.Debug().Int("offset", res.Offset).Msg("dropping result from before reset")
		return
	}

	page, err := decodePage(res)
	if err != nil {
		c.log.Warn().Err(err).Int("offset", res.Offset).Msg("page load failed, will retry on next scroll")
		c.state.ShouldLoad = true
		c.lastErr = err
		c.notify()
		return
	}
	c.lastErr = nil

	rows := make([]Item, 0, len(page.Items))
	for _, r := range page.Items {
		if !domain.ValidRating(r.Rating) {
			c.log.Warn().Int("rating", r.Rating).Int("offset", res.Offset).Msg("rating out of range, clamping")
		}
		rows = append(rows, NewReviewRow(r, c.deps, c.Expand))
	}
	c.insertRows(rows)

	c.state.Offset += c.state.PageSize
	c.state.Count = page.Count
	c.state.CountKnown = true
	c.state.ShouldLoad = c.state.Offset < c.state.Count

	if !c.state.ShouldLoad && c.state.countRowIndex() < 0 {
		c.state.Items = append(c.state.Items, newCountRow(c.state.Count, c.deps.Engine.Metrics().CountRowHeight))
	}

	c.log.Debug().
		Int("rows", len(rows)).
		Int("offset", c.state.Offset).
		Int("count", c.state.Count).
		Bool("should_load", c.state.ShouldLoad).
		Msg("page applied")
	c.notify()
}

// insertRows appends review rows, keeping an existing count row last.
func (c *Controller) insertRows(rows []Item) {
	idx := c.state.countRowIndex()
	if idx < 0 {
		c.state.Items = append(c.state.Items, rows...)
		return
	}
	countRow := c.state.Items[idx]
	items := append(c.state.Items[:idx:idx], rows...)
	items = append(items, c.state.Items[idx+1:]...)
	c.state.Items = append(items, countRow)
}

// Expand removes truncation from the review row with the given id. Unknown
// ids, count rows and already expanded rows are ignored.
func (c *Controller) Expand(id uuid.UUID) {
	key := id.String()
	for i, it := range c.state.Items {
		if it.Key() != key {
			continue
		}
		expanded, ok := it.Expand()
		if !ok {
			return
		}
		items := c.State().Items
		items[i] = expanded
		c.state.Items = items
		c.notify()
		return
	}
}

// Reset clears the list. Results of requests still in flight are dropped.
func (c *Controller) Reset() {
	c.generation++
	c.state = State{PageSize: c.state.PageSize, ShouldLoad: true}
	c.lastErr = nil
	c.log.Debug().Int("generation", c.generation).Msg("list reset")
}

// LastError returns the failure of the most recent applied page, or nil
// once a page succeeds.
func (c *Controller) LastError() error {
	return c.lastErr
}

// RowCount returns the number of rows, including the count row.
func (c *Controller) RowCount() int {
	return len(c.state.Items)
}

// Item returns the row at index i.
func (c *Controller) Item(i int) (Item, bool) {
	if i < 0 || i >= len(c.state.Items) {
		return nil, false
	}
	return c.state.Items[i], true
}

// RowHeight returns the height of row i at width, or 0 when out of range.
func (c *Controller) RowHeight(i int, width float64) float64 {
	it, ok := c.Item(i)
	if !ok {
		return 0
	}
	return it.Height(width)
}

// Render dispatches row i to t.
func (c *Controller) Render(i int, t Target) {
	if it, ok := c.Item(i); ok {
		it.Render(t)
	}
}

// Review returns row i when it is a review row.
func (c *Controller) Review(i int) (ReviewRow, bool) {
	var pick reviewPicker
	c.Render(i, &pick)
	return pick.row, pick.ok
}

// reviewPicker is a Target that keeps the review row rendered into it.
type reviewPicker struct {
	row ReviewRow
	ok  bool
}

func (p *reviewPicker) RenderReview(row ReviewRow) { p.row, p.ok = row, true }
func (p *reviewPicker) RenderCount(CountRow)       {}

func (c *Controller) notify() {
	if c.observer == nil {
		return
	}
	c.observer.OnStateChange(c.State())
}

func decodePage(res PageResult) (domain.Page, error) {
	if res.Err != nil {
		return domain.Page{}, fmt.Errorf("%w: %w", ErrPageLoad, res.Err)
	}
	var page domain.Page
	if err := json.Unmarshal(res.Data, &page); err != nil {
		return domain.Page{}, fmt.Errorf("%w: decode: %w", ErrPageLoad, err)
	}
	if page.Count < 0 {
		return domain.Page{}, fmt.Errorf("%w: decode: negative count %d", ErrPageLoad, page.Count)
	}
	return page, nil
}
