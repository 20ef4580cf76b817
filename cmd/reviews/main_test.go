package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/naveenspark/reviews/internal/config"
	"github.com/naveenspark/reviews/internal/fixture"
	"github.com/naveenspark/reviews/internal/reviews"
	"github.com/naveenspark/reviews/pkg/client"
)

func testEnv(t *testing.T) *Env {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.FixtureLatency = 0
	return &Env{Config: &cfg, Version: "test"}
}

func TestBuild(t *testing.T) {
	prevV, prevC := version, commit
	t.Cleanup(func() { version, commit = prevV, prevC })

	version, commit = "1.2.3", "abcdef1234567"
	if got := build(); !strings.HasPrefix(got, "1.2.3 (abcdef1) ") {
		t.Errorf("build() = %q, want prefix %q", got, "1.2.3 (abcdef1) ")
	}
}

func TestLoadConfig_SourceOverride(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := loadConfig(&Flags{ConfigPath: missing, Source: "http://localhost:8080", Token: "tok"})
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Source != "http://localhost:8080" {
		t.Errorf("Source = %q, want override", cfg.Source)
	}
	if cfg.Token != "tok" {
		t.Errorf("Token = %q, want %q", cfg.Token, "tok")
	}

	if _, err := loadConfig(&Flags{ConfigPath: missing, Source: "localhost"}); err == nil {
		t.Error("expected error for invalid --source")
	}
}

func TestNewProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	p, err := newProvider(&cfg)
	if err != nil {
		t.Fatalf("newProvider() error: %v", err)
	}
	if _, ok := p.(*fixture.Provider); !ok {
		t.Errorf("newProvider(fixture) = %T, want *fixture.Provider", p)
	}

	cfg.Source = "https://reviews.example.com"
	p, err = newProvider(&cfg)
	if err != nil {
		t.Fatalf("newProvider() error: %v", err)
	}
	if _, ok := p.(*client.Client); !ok {
		t.Errorf("newProvider(url) = %T, want *client.Client", p)
	}
}

func TestDump(t *testing.T) {
	env := testEnv(t)
	p, err := newProvider(env.Config)
	if err != nil {
		t.Fatalf("newProvider() error: %v", err)
	}

	var out, progress bytes.Buffer
	cmd := &DumpCmd{env: env, width: 375}
	if err := cmd.run(context.Background(), p, &out, &progress); err != nil {
		t.Fatalf("run() error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// header + 45 reviews + count row + total
	if len(lines) != 48 {
		t.Fatalf("got %d lines, want 48:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[46], "Total reviews: 45") {
		t.Errorf("lines[46] = %q, want count row", lines[46])
	}
	if !strings.Contains(lines[1], "Anna Smith") {
		t.Errorf("lines[1] = %q, want first reviewer", lines[1])
	}
	if got := strings.Count(progress.String(), "loaded"); got != 3 {
		t.Errorf("progress has %d updates, want 3:\n%s", got, progress.String())
	}
	if !strings.Contains(out.String(), "yes") {
		t.Error("expected at least one truncated review at 375pt")
	}
}

func TestDump_Expand(t *testing.T) {
	env := testEnv(t)
	p, _ := newProvider(env.Config)

	var out, progress bytes.Buffer
	cmd := &DumpCmd{env: env, width: 375, expand: true}
	if err := cmd.run(context.Background(), p, &out, &progress); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if strings.Contains(out.String(), "yes") {
		t.Errorf("expanded dump still has truncated rows:\n%s", out.String())
	}
}

func TestDump_ProviderError(t *testing.T) {
	p := reviews.ProviderFunc(func(context.Context, int, int) ([]byte, error) {
		return nil, errors.New("offline")
	})

	cmd := &DumpCmd{env: testEnv(t), width: 375}
	err := cmd.run(context.Background(), p, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, reviews.ErrPageLoad) {
		t.Fatalf("run() error = %v, want ErrPageLoad", err)
	}
}

func TestDump_BadWidth(t *testing.T) {
	cmd := &DumpCmd{env: testEnv(t), width: 0}
	if err := cmd.run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestCheckFeed(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("OK")) //nolint:errcheck
	}))
	defer srv.Close()

	cfg := config.DefaultConfig()
	if err := checkFeed(context.Background(), &cfg); err != nil {
		t.Errorf("checkFeed(fixture) error: %v", err)
	}

	cfg.Source = srv.URL
	if err := checkFeed(context.Background(), &cfg); err != nil {
		t.Errorf("checkFeed(healthy) error: %v", err)
	}

	healthy = false
	err := checkFeed(context.Background(), &cfg)
	if !client.IsStatus(err, http.StatusServiceUnavailable) {
		t.Errorf("checkFeed(down) = %v, want a 503 HTTPError", err)
	}
	if err != nil && !strings.Contains(err.Error(), srv.URL) {
		t.Errorf("error %q does not name the feed", err)
	}
}
