package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("reviews")
	logger.Info().Msg("page applied")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}
	if entry["cmp"] != "reviews" {
		t.Errorf("Component() cmp = %v, want %q", entry["cmp"], "reviews")
	}
	if entry["message"] != "page applied" {
		t.Errorf("Component() message = %v, want %q", entry["message"], "page applied")
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reviews.log")

	logger, closer, err := New("info", path)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Debug().Msg("hidden")
	logger.Info().Msg("visible")
	closer()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
	if !strings.Contains(out, `"message":"visible"`) {
		t.Errorf("log = %s, want info entry", out)
	}
	if !strings.Contains(out, `"time"`) {
		t.Errorf("log = %s, want timestamp", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New("loud", ""); err == nil {
		t.Fatal("New() with bad level should fail")
	}
}
