// Package orchestrate fans one query out to the selected engines, isolates
// each engine's failure, and joins every outcome before aggregation starts.
package orchestrate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/multisearch/internal/engines"
	"github.com/hyperifyio/multisearch/internal/search"
)

// Request is one fan-out invocation shared by every selected engine.
type Request struct {
	Query     string
	Pages     int
	Proxy     string
	Timeout   time.Duration
	UserAgent string
}

// Outcome is the per-engine result: a list of normalized records or an
// isolated failure. Failures never propagate as errors of the batch.
type Outcome struct {
	Engine  string
	Results []search.Result
	Err     error
}

// Run launches one runner per selected engine and waits for all of them to
// settle. Outcomes keep the selection order regardless of completion order.
// Per-engine failures, timeouts included, are reported as warnings on the
// diagnostic stream after the join; total failure of every engine still
// returns normally.
func Run(ctx context.Context, selected []engines.Selected, req Request) []Outcome {
	outcomes := make([]Outcome, len(selected))
	var g errgroup.Group
	for i, sel := range selected {
		i, sel := i, sel
		g.Go(func() error {
			outcomes[i] = runOne(ctx, sel, req)
			return nil
		})
	}
	_ = g.Wait() // join barrier; runners never return errors

	for _, o := range outcomes {
		if o.Err != nil {
			log.Warn().Str("engine", o.Engine).Err(o.Err).Msg("engine failed")
		}
	}
	return outcomes
}

// runOne executes exactly one adapter invocation under isolation: it bounds
// the search with the configured timeout, translates panics into errors, and
// closes the adapter on every exit path.
func runOne(ctx context.Context, sel engines.Selected, req Request) (out Outcome) {
	out.Engine = sel.Name
	defer func() {
		if r := recover(); r != nil {
			out.Results = nil
			out.Err = fmt.Errorf("engine panic: %v", r)
		}
	}()

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	adapter, err := sel.New(search.Config{
		Proxy:     req.Proxy,
		Timeout:   timeout,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		out.Err = err
		return out
	}
	defer func() {
		if cerr := adapter.Close(); cerr != nil {
			log.Debug().Str("engine", sel.Name).Err(cerr).Msg("adapter close")
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raws, err := adapter.Search(ctx, req.Query, req.Pages)
	if err != nil {
		out.Err = err
		return out
	}
	results := make([]search.Result, 0, len(raws))
	for _, r := range raws {
		results = append(results, search.Normalize(adapter.Name(), r))
	}
	out.Results = results
	return out
}
