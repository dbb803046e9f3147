package engines

import (
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/multisearch/internal/search"
)

// ErrNoValidEngines is returned when a request resolves to zero engines.
// It is the only resolution failure that aborts a query.
var ErrNoValidEngines = errors.New("no valid engines selected")

// workingEngines run without special setup.
var workingEngines = map[string]search.Constructor{
	"bing":      NewBing,
	"yahoo":     NewYahoo,
	"startpage": NewStartpage,
	"aol":       NewAol,
	"ask":       NewAsk,
}

// torEngines need a proxy able to reach onion services.
var torEngines = map[string]search.Constructor{
	"torch": NewTorch,
}

// DefaultNames is the ordered engine selection used when the caller gives
// none. Tor engines are never part of it.
func DefaultNames() []string {
	return []string{"bing", "yahoo", "startpage", "aol", "ask"}
}

// Known returns every registered engine name plus any extras, sorted.
func Known(extra map[string]search.Constructor) []string {
	names := make([]string, 0, len(workingEngines)+len(torEngines)+len(extra))
	for n := range workingEngines {
		names = append(names, n)
	}
	for n := range torEngines {
		names = append(names, n)
	}
	for n := range extra {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Selected is one requested engine resolved against the registry.
type Selected struct {
	Name string
	New  search.Constructor
}

// Resolve maps requested names onto registered constructors, preserving the
// requested order. Names are case-folded and trimmed. Unknown names are
// logged as warnings and dropped; repeating a name selects the engine once
// per mention, so it runs once per mention. extra lets the caller register
// config-gated engines such as searx or the offline file engine.
func Resolve(names []string, extra map[string]search.Constructor) ([]Selected, error) {
	var out []Selected
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		ctor, ok := lookup(name, extra)
		if !ok {
			log.Warn().
				Str("engine", name).
				Strs("available", Known(extra)).
				Msg("unknown engine, skipping")
			continue
		}
		out = append(out, Selected{Name: name, New: ctor})
	}
	if len(out) == 0 {
		return nil, ErrNoValidEngines
	}
	return out, nil
}

func lookup(name string, extra map[string]search.Constructor) (search.Constructor, bool) {
	if c, ok := workingEngines[name]; ok {
		return c, true
	}
	if c, ok := torEngines[name]; ok {
		return c, true
	}
	c, ok := extra[name]
	return c, ok
}
