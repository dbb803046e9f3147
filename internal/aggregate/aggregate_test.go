package aggregate

import (
	"testing"

	"github.com/hyperifyio/multisearch/internal/search"
)

func TestMerge_NoFlagsIsExactConcatenation(t *testing.T) {
	groups := [][]search.Result{
		{
			{Engine: "bing", Link: "https://a/1", Host: "a"},
			{Engine: "bing", Link: "https://a/1", Host: "a"}, // repeat survives
		},
		{
			{Engine: "yahoo", Link: "https://a/1", Host: "a"},
		},
	}
	out := Merge(groups, false, false)
	if len(out) != 3 {
		t.Fatalf("expected exact concatenation length 3, got %d", len(out))
	}
	if out[0].Engine != "bing" || out[2].Engine != "yahoo" {
		t.Fatalf("concatenation order broken: %+v", out)
	}
}

func TestMerge_ByURL_FirstSeenWins(t *testing.T) {
	groups := [][]search.Result{
		{{Engine: "bing", Link: "https://a/1", Title: "first"}},
		{{Engine: "yahoo", Link: "https://a/1", Title: "second"}},
		{{Engine: "yahoo", Link: "https://b/2", Title: "kept"}},
	}
	out := Merge(groups, true, false)
	if len(out) != 2 {
		t.Fatalf("expected 2 after url dedup, got %d", len(out))
	}
	if out[0].Title != "first" || out[0].Engine != "bing" {
		t.Fatalf("first occurrence did not win: %+v", out[0])
	}
	seen := make(map[string]bool)
	for _, r := range out {
		if r.Link != "" && seen[r.Link] {
			t.Fatalf("duplicate link survived: %q", r.Link)
		}
		seen[r.Link] = true
	}
}

func TestMerge_ByDomain(t *testing.T) {
	groups := [][]search.Result{
		{{Link: "https://example.com/1", Host: "example.com"}},
		{{Link: "https://example.com/2", Host: "example.com"}},
		{{Link: "https://other.org/3", Host: "other.org"}},
	}
	out := Merge(groups, false, true)
	if len(out) != 2 {
		t.Fatalf("expected 2 after domain dedup, got %d", len(out))
	}
	if out[0].Link != "https://example.com/1" || out[1].Link != "https://other.org/3" {
		t.Fatalf("unexpected survivors: %+v", out)
	}
}

func TestMerge_BothFlags_CombinedCheck(t *testing.T) {
	// Second record has a fresh link but a seen host; the combined decision
	// must drop it rather than admit it because the link check passed.
	groups := [][]search.Result{
		{{Link: "https://example.com/1", Host: "example.com"}},
		{{Link: "https://example.com/2", Host: "example.com"}},
	}
	out := Merge(groups, true, true)
	if len(out) != 1 {
		t.Fatalf("expected 1 after combined dedup, got %d", len(out))
	}
}

func TestMerge_EmptyKeysNeverDedup(t *testing.T) {
	groups := [][]search.Result{
		{{Engine: "a", Title: "one"}, {Engine: "a", Title: "two"}},
	}
	out := Merge(groups, true, true)
	if len(out) != 2 {
		t.Fatalf("records with empty keys must all survive, got %d", len(out))
	}
}

func TestMerge_NoGroups(t *testing.T) {
	if out := Merge(nil, true, true); len(out) != 0 {
		t.Fatalf("expected empty merge, got %d", len(out))
	}
}
