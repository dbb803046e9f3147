package orchestrate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hyperifyio/multisearch/internal/engines"
	"github.com/hyperifyio/multisearch/internal/search"
)

// fakeAdapter is a scripted in-memory engine for runner tests.
type fakeAdapter struct {
	name    string
	raws    []search.Raw
	err     error
	block   bool // wait for ctx cancellation before returning
	panicky bool
	closed  *atomic.Int32
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Search(ctx context.Context, query string, pages int) ([]search.Raw, error) {
	if f.panicky {
		panic("selector table corrupted")
	}
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.raws, f.err
}

func (f *fakeAdapter) Close() error {
	if f.closed != nil {
		f.closed.Add(1)
	}
	return nil
}

func constructorFor(f *fakeAdapter) search.Constructor {
	return func(search.Config) (search.Adapter, error) { return f, nil }
}

func TestRun_OneFailureDoesNotReduceOthers(t *testing.T) {
	good := &fakeAdapter{name: "a", raws: []search.Raw{
		{"link": "https://a/1", "title": "1"},
		{"link": "https://a/2", "title": "2"},
		{"link": "https://a/3", "title": "3"},
	}}
	bad := &fakeAdapter{name: "b", err: errors.New("connection refused")}

	selected := []engines.Selected{
		{Name: "a", New: constructorFor(good)},
		{Name: "b", New: constructorFor(bad)},
	}
	outcomes := Run(context.Background(), selected, Request{Query: "q", Pages: 1})
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Err != nil || len(outcomes[0].Results) != 3 {
		t.Fatalf("healthy engine reduced: %+v", outcomes[0])
	}
	if outcomes[1].Err == nil || outcomes[1].Results != nil {
		t.Fatalf("failure not isolated: %+v", outcomes[1])
	}
}

func TestRun_OutcomesKeepSelectionOrder(t *testing.T) {
	slow := &fakeAdapter{name: "slow", block: true}
	fast := &fakeAdapter{name: "fast", raws: []search.Raw{{"link": "https://f/1"}}}

	selected := []engines.Selected{
		{Name: "slow", New: constructorFor(slow)},
		{Name: "fast", New: constructorFor(fast)},
	}
	outcomes := Run(context.Background(), selected, Request{Query: "q", Timeout: 50 * time.Millisecond})
	if outcomes[0].Engine != "slow" || outcomes[1].Engine != "fast" {
		t.Fatalf("order follows completion, not selection: %v, %v", outcomes[0].Engine, outcomes[1].Engine)
	}
	if outcomes[0].Err == nil {
		t.Fatalf("blocked engine should have timed out")
	}
	if len(outcomes[1].Results) != 1 {
		t.Fatalf("fast engine lost results: %+v", outcomes[1])
	}
}

func TestRun_TimeoutDoesNotCancelSiblings(t *testing.T) {
	var closed atomic.Int32
	hanging := &fakeAdapter{name: "hang", block: true, closed: &closed}
	healthy := &fakeAdapter{name: "ok", raws: []search.Raw{{"link": "https://ok/1"}}, closed: &closed}

	selected := []engines.Selected{
		{Name: "hang", New: constructorFor(hanging)},
		{Name: "ok", New: constructorFor(healthy)},
	}
	start := time.Now()
	outcomes := Run(context.Background(), selected, Request{Query: "q", Timeout: 50 * time.Millisecond})
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("join took too long: %v", elapsed)
	}
	if outcomes[1].Err != nil {
		t.Fatalf("sibling cancelled by another engine's timeout: %v", outcomes[1].Err)
	}
	if closed.Load() != 2 {
		t.Fatalf("expected both adapters closed, got %d", closed.Load())
	}
}

func TestRun_CloseCalledOnFailurePath(t *testing.T) {
	var closed atomic.Int32
	bad := &fakeAdapter{name: "bad", err: errors.New("parse error"), closed: &closed}

	Run(context.Background(), []engines.Selected{{Name: "bad", New: constructorFor(bad)}}, Request{Query: "q"})
	if closed.Load() != 1 {
		t.Fatalf("adapter leaked on failure path")
	}
}

func TestRun_CloseCalledOnPanicPath(t *testing.T) {
	var closed atomic.Int32
	p := &fakeAdapter{name: "p", panicky: true, closed: &closed}

	outcomes := Run(context.Background(), []engines.Selected{{Name: "p", New: constructorFor(p)}}, Request{Query: "q"})
	if outcomes[0].Err == nil {
		t.Fatalf("panic should surface as failure outcome")
	}
	if closed.Load() != 1 {
		t.Fatalf("adapter leaked on panic path")
	}
}

func TestRun_ConstructorFailureIsOutcome(t *testing.T) {
	selected := []engines.Selected{{
		Name: "torchless",
		New: func(search.Config) (search.Adapter, error) {
			return nil, errors.New("torch requires a running tor proxy")
		},
	}}
	outcomes := Run(context.Background(), selected, Request{Query: "q"})
	if outcomes[0].Err == nil {
		t.Fatalf("constructor failure should be an outcome, not a panic")
	}
}

func TestRun_AllFailuresStillReturn(t *testing.T) {
	a := &fakeAdapter{name: "a", err: errors.New("down")}
	b := &fakeAdapter{name: "b", err: errors.New("also down")}
	selected := []engines.Selected{
		{Name: "a", New: constructorFor(a)},
		{Name: "b", New: constructorFor(b)},
	}
	outcomes := Run(context.Background(), selected, Request{Query: "q"})
	for i, o := range outcomes {
		if o.Err == nil {
			t.Fatalf("outcome %d should carry a failure", i)
		}
		if len(o.Results) != 0 {
			t.Fatalf("failed outcome %d should have no results", i)
		}
	}
}

func TestRun_NormalizationTagsEngine(t *testing.T) {
	f := &fakeAdapter{name: "a", raws: []search.Raw{{"title": "only title"}}}
	outcomes := Run(context.Background(), []engines.Selected{{Name: "a", New: constructorFor(f)}}, Request{Query: "q"})
	got := outcomes[0].Results
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Engine != "a" {
		t.Fatalf("result not tagged with engine: %+v", got[0])
	}
	if got[0].Host != "" || got[0].Link != "" || got[0].Text != "" {
		t.Fatalf("missing fields should be empty strings: %+v", got[0])
	}
}
