package search

import (
	"context"
	"time"
)

// Result is the canonical normalized record produced by any engine.
// Every field is always present; missing data normalizes to the empty
// string so encoders never branch on absence.
type Result struct {
	Engine string `json:"engine"`
	Host   string `json:"host"`
	Link   string `json:"link"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// Raw is an engine-specific record before normalization. Keys are
// host, link, title and text; any of them may be missing.
type Raw map[string]string

// Normalize maps a raw record into the canonical shape and tags it with
// the engine name that produced it.
func Normalize(engine string, r Raw) Result {
	return Result{
		Engine: engine,
		Host:   r["host"],
		Link:   r["link"],
		Title:  r["title"],
		Text:   r["text"],
	}
}

// Config carries the per-invocation settings an engine is constructed with.
type Config struct {
	// Proxy is an optional HTTP or SOCKS proxy URL,
	// e.g. socks5://127.0.0.1:9050.
	Proxy string
	// Timeout bounds each network request. Zero means a 10s default.
	Timeout time.Duration
	// UserAgent overrides the default User-Agent when non-empty.
	UserAgent string
}

// Adapter is the capability implemented by every search engine. An adapter
// owns its own connection lifecycle: it is constructed for exactly one
// invocation, searched once, and closed regardless of the outcome.
type Adapter interface {
	Name() string
	Search(ctx context.Context, query string, pages int) ([]Raw, error)
	Close() error
}

// Constructor builds a fresh adapter for one invocation.
type Constructor func(Config) (Adapter, error)
