package app

import (
	"strings"
	"time"
)

// Config is the full query configuration. Precedence when assembling it is
// flags over environment over config file; every field except Query has a
// default.
type Config struct {
	// Query is the search text. Required.
	Query string
	// Engines is the ordered engine selection. Empty means the default set.
	Engines []string
	// Pages is the number of result pages fetched per engine. Default 3.
	Pages int
	// Proxy is an optional HTTP or SOCKS proxy URL shared by all engines.
	Proxy string
	// Timeout bounds each engine invocation. Default 10s.
	Timeout time.Duration
	// UniqueURLs drops results whose link was already seen.
	UniqueURLs bool
	// UniqueDomains drops results whose host was already seen.
	UniqueDomains bool
	// Format selects the payload encoding: json, csv, text or pdf.
	Format string
	// OutputPath writes the payload to a file instead of stdout.
	OutputPath string
	// ResultsFile registers the offline "file" engine backed by a JSON file.
	ResultsFile string
	// SearxURL registers the "searx" engine against a SearxNG instance.
	SearxURL string
	// SearxKey is the optional API key for that instance.
	SearxKey string
	// UserAgent overrides the rotating default User-Agent set.
	UserAgent string
	// Verbose enables debug logging.
	Verbose bool
}

// SplitList parses a comma-separated list, trimming blanks.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
