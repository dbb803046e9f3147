package app

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if len(cfg.Engines) == 0 {
		if v := os.Getenv("MULTISEARCH_ENGINES"); v != "" {
			cfg.Engines = SplitList(v)
		}
	}
	if cfg.Proxy == "" {
		cfg.Proxy = os.Getenv("PROXY_URL")
	}
	if cfg.Format == "" {
		cfg.Format = os.Getenv("OUTPUT_FORMAT")
	}
	if cfg.ResultsFile == "" {
		cfg.ResultsFile = os.Getenv("RESULTS_FILE")
	}

	if cfg.SearxURL == "" {
		// Support both SEARX_URL and SEARXNG_URL; prefer SEARX_URL if set
		v := os.Getenv("SEARX_URL")
		if v == "" {
			v = os.Getenv("SEARXNG_URL")
		}
		cfg.SearxURL = v
	}
	if cfg.SearxKey == "" {
		v := os.Getenv("SEARX_KEY")
		if v == "" {
			v = os.Getenv("SEARXNG_KEY")
		}
		cfg.SearxKey = v
	}

	if cfg.Pages == 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SEARCH_PAGES"))); err == nil && n > 0 {
			cfg.Pages = n
		}
	}
	// SEARCH_TIMEOUT accepts a duration ("15s") or bare seconds ("15").
	// A malformed value is ignored rather than fatal.
	if cfg.Timeout == 0 {
		if s := os.Getenv("SEARCH_TIMEOUT"); s != "" {
			if d, err := parseTimeout(s); err == nil {
				cfg.Timeout = d
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				*dst = true
			}
		}
	}
	setBool(&cfg.UniqueURLs, "UNIQUE_URLS")
	setBool(&cfg.UniqueDomains, "UNIQUE_DOMAINS")
	setBool(&cfg.Verbose, "VERBOSE")
}
