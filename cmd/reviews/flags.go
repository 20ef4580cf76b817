package main

import (
	"context"
	"fmt"
	"time"

	"github.com/naveenspark/reviews/internal/config"
	"github.com/naveenspark/reviews/internal/fixture"
	"github.com/naveenspark/reviews/internal/layout"
	"github.com/naveenspark/reviews/internal/logging"
	"github.com/naveenspark/reviews/internal/rating"
	"github.com/naveenspark/reviews/internal/reviews"
	"github.com/naveenspark/reviews/pkg/client"
	"github.com/naveenspark/reviews/pkg/domain"
)

// Flags holds the global flag values.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Source     string
	Token      string
}

// Env is what every command runs with once Before has finished.
type Env struct {
	Config  *config.Config
	Version string
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(flags *Flags) (*config.Config, error) {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.Source != "" {
		if err := config.SourceField("--source", flags.Source); err != nil {
			return nil, err
		}
		cfg.Source = flags.Source
	}
	if flags.Token != "" {
		cfg.Token = flags.Token
	}
	return cfg, nil
}

// newProvider returns the review feed selected by cfg.
func newProvider(cfg *config.Config) (reviews.Provider, error) {
	if cfg.IsFixture() {
		p, err := fixture.New(cfg.FixtureLatency)
		if err != nil {
			return nil, fmt.Errorf("open fixture: %w", err)
		}
		return p, nil
	}
	return newClient(cfg), nil
}

func newClient(cfg *config.Config) *client.Client {
	return client.New(cfg.Source, cfg.Token, client.WithUserAgent("reviews/"+version))
}

// healthTimeout bounds the reachability check made before the list opens.
const healthTimeout = 5 * time.Second

// checkFeed fails fast when an HTTP feed is unreachable. The fixture is
// always available.
func checkFeed(ctx context.Context, cfg *config.Config) error {
	if cfg.IsFixture() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if err := newClient(cfg).Health(ctx); err != nil {
		return fmt.Errorf("review feed %s: %w", cfg.Source, err)
	}
	return nil
}

// newController wires a controller for cfg with rows laid out by metrics.
func newController(cfg *config.Config, p reviews.Provider, metrics layout.Metrics, opts ...reviews.Option) *reviews.Controller {
	deps := reviews.Deps{
		Engine:   layout.NewEngine(metrics),
		Ratings:  rating.NewRenderer(domain.MaxRating),
		MaxLines: cfg.MaxLines,
	}
	base := []reviews.Option{
		reviews.WithPageSize(cfg.PageSize),
		reviews.WithLoadMultiplier(cfg.LoadMultiplier),
		reviews.WithRequestTimeout(cfg.RequestTimeout),
		reviews.WithLogger(logging.Component("reviews")),
	}
	return reviews.New(p, deps, append(base, opts...)...)
}

// sinceMillis is a log helper for elapsed times.
func sinceMillis(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
