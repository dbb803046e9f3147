package search

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
)

// FileEngine loads raw records from a local JSON file for offline or test
// use. The file format is an array of objects:
// {"host": "...", "link": "...", "title": "...", "text": "..."}.
type FileEngine struct {
	Path string
}

// NewFileEngine returns a constructor bound to the given path, suitable for
// registering alongside the network engines.
func NewFileEngine(path string) Constructor {
	return func(Config) (Adapter, error) {
		return &FileEngine{Path: path}, nil
	}
}

func (f *FileEngine) Name() string { return "file" }

func (f *FileEngine) Search(_ context.Context, query string, pages int) ([]Raw, error) {
	if strings.TrimSpace(f.Path) == "" {
		return nil, errors.New("file engine path is empty")
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	var raw []Raw
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Raw, 0, len(raw))
	for _, r := range raw {
		if r["link"] == "" {
			continue
		}
		if q == "" || strings.Contains(strings.ToLower(r["title"]), q) || strings.Contains(strings.ToLower(r["text"]), q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *FileEngine) Close() error { return nil }
