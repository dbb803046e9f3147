// Package app wires resolution, fan-out, aggregation and encoding into one
// run, keeping the payload stream separate from diagnostics.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/multisearch/internal/aggregate"
	"github.com/hyperifyio/multisearch/internal/engines"
	"github.com/hyperifyio/multisearch/internal/orchestrate"
	"github.com/hyperifyio/multisearch/internal/output"
	"github.com/hyperifyio/multisearch/internal/search"
)

// App executes one multi-engine query.
type App struct {
	cfg    Config
	format output.Format
	out    io.Writer
}

// New validates the configuration, applies defaults, and binds the payload
// writer. Encoding selection fails here, before any network activity.
func New(cfg Config, out io.Writer) (*App, error) {
	if strings.TrimSpace(cfg.Query) == "" {
		return nil, errors.New("query must not be empty")
	}
	if cfg.Pages < 1 {
		cfg.Pages = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Format == "" {
		cfg.Format = string(output.FormatJSON)
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	if len(cfg.Engines) == 0 {
		cfg.Engines = engines.DefaultNames()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{cfg: cfg, format: format, out: out}, nil
}

// Run resolves the engine selection, fans the query out, aggregates, and
// writes the encoded payload. Per-engine failures have already been
// downgraded to warnings by the time Run returns; the only hard failure is
// an empty resolved selection.
func (a *App) Run(ctx context.Context) error {
	selected, err := engines.Resolve(a.cfg.Engines, a.extraEngines())
	if err != nil {
		return err
	}

	log.Info().
		Int("engines", len(selected)).
		Str("query", a.cfg.Query).
		Int("pages", a.cfg.Pages).
		Msg("searching")

	outcomes := orchestrate.Run(ctx, selected, orchestrate.Request{
		Query:     a.cfg.Query,
		Pages:     a.cfg.Pages,
		Proxy:     a.cfg.Proxy,
		Timeout:   a.cfg.Timeout,
		UserAgent: a.cfg.UserAgent,
	})

	groups := make([][]search.Result, 0, len(outcomes))
	for _, o := range outcomes {
		groups = append(groups, o.Results)
	}
	merged := aggregate.Merge(groups, a.cfg.UniqueURLs, a.cfg.UniqueDomains)

	log.Info().Int("results", len(merged)).Msg("search complete")

	payload, err := output.Encode(a.format, merged)
	if err != nil {
		return fmt.Errorf("encode %s: %w", a.format, err)
	}
	if a.cfg.OutputPath != "" {
		return os.WriteFile(a.cfg.OutputPath, payload, 0o644)
	}
	_, err = a.out.Write(payload)
	return err
}

// extraEngines registers the config-gated engines that are not part of the
// closed default registry.
func (a *App) extraEngines() map[string]search.Constructor {
	extra := make(map[string]search.Constructor)
	if a.cfg.ResultsFile != "" {
		extra["file"] = search.NewFileEngine(a.cfg.ResultsFile)
	}
	if a.cfg.SearxURL != "" {
		extra["searx"] = engines.NewSearx(a.cfg.SearxURL, a.cfg.SearxKey)
	}
	return extra
}
