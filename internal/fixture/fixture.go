// Package fixture serves an embedded review feed for offline use, demos and
// tests.
package fixture

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/naveenspark/reviews/internal/logging"
	"github.com/naveenspark/reviews/pkg/domain"
)

//go:embed reviews.json
var reviewsJSON []byte

// Reviews returns a copy of the embedded records.
func Reviews() ([]domain.Review, error) {
	var out []domain.Review
	if err := json.Unmarshal(reviewsJSON, &out); err != nil {
		return nil, fmt.Errorf("fixture.Reviews: %w", err)
	}
	return out, nil
}

// Provider pages through a fixed set of reviews after a simulated delay.
type Provider struct {
	reviews []domain.Review
	latency time.Duration
	log     zerolog.Logger
}

// New returns a provider over the embedded records.
func New(latency time.Duration) (*Provider, error) {
	reviews, err := Reviews()
	if err != nil {
		return nil, err
	}
	return NewWithReviews(reviews, latency), nil
}

// NewWithReviews returns a provider over reviews.
func NewWithReviews(reviews []domain.Review, latency time.Duration) *Provider {
	return &Provider{
		reviews: reviews,
		latency: latency,
		log:     logging.Component("fixture"),
	}
}

// GetReviews encodes the page [offset, offset+limit) with the full count.
// Offsets past the end yield an empty page.
func (p *Provider) GetReviews(ctx context.Context, offset, limit int) ([]byte, error) {
	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("fixture.GetReviews: invalid range offset=%d limit=%d", offset, limit)
	}

	if p.latency > 0 {
		t := time.NewTimer(p.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("fixture.GetReviews: %w", ctx.Err())
		case <-t.C:
		}
	}

	start := min(offset, len(p.reviews))
	end := min(offset+limit, len(p.reviews))
	page := domain.Page{Items: p.reviews[start:end], Count: len(p.reviews)}
	if page.Items == nil {
		page.Items = []domain.Review{}
	}

	data, err := json.Marshal(page)
	if err != nil {
		return nil, fmt.Errorf("fixture.GetReviews: %w", err)
	}
	p.log.Debug().Int("offset", offset).Int("limit", limit).Int("items", end-start).Msg("served page")
	return data, nil
}
