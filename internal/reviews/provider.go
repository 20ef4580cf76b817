package reviews

import (
	"context"
	"errors"
)

// ErrPageLoad is returned for any failed page: transport or decode.
var ErrPageLoad = errors.New("page load failed")

// Provider fetches a raw page of reviews.
type Provider interface {
	GetReviews(ctx context.Context, offset, limit int) ([]byte, error)
}

// ProviderFunc adapts a function to a Provider.
type ProviderFunc func(ctx context.Context, offset, limit int) ([]byte, error)

// GetReviews calls f.
func (f ProviderFunc) GetReviews(ctx context.Context, offset, limit int) ([]byte, error) {
	return f(ctx, offset, limit)
}

// Observer is notified after every page result and every expand.
type Observer interface {
	OnStateChange(State)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(State)

// OnStateChange calls f.
func (f ObserverFunc) OnStateChange(s State) {
	f(s)
}
