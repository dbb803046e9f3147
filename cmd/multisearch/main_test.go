package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hyperifyio/multisearch/internal/app"
	"github.com/hyperifyio/multisearch/internal/engines"
)

// Smoke test: run end to end against the offline file engine and check the
// payload lands in the output file.
func TestRun_FileEngine_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	results := filepath.Join(dir, "results.json")
	out := filepath.Join(dir, "out.json")
	data := `[{"host": "example.com", "link": "https://example.com/a", "title": "hit", "text": ""}]`
	if err := os.WriteFile(results, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := app.Config{
		Query:       "hit",
		Engines:     []string{"file"},
		ResultsFile: results,
		OutputPath:  out,
	}
	if err := run(cfg); err != nil {
		t.Fatalf("run error: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil || len(b) == 0 {
		t.Fatalf("expected output file, err=%v", err)
	}
}

// The no-valid-engines sentinel must surface from run() so main can map it
// to a nonzero exit.
func TestRun_NoValidEngines_Error(t *testing.T) {
	cfg := app.Config{
		Query:   "anything",
		Engines: []string{"foo", "bar"},
	}
	err := run(cfg)
	if !errors.Is(err, engines.ErrNoValidEngines) {
		t.Fatalf("expected ErrNoValidEngines, got %v", err)
	}
}
