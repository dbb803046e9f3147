package engines

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyperifyio/multisearch/internal/search"
)

func TestSearx_ParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("missing format=json: %v", r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"title": "Doc", "url": "https://example.com/doc", "content": "snippet"},
				{"title": "Bad", "url": "", "content": "no url"},
			},
		})
	}))
	defer srv.Close()

	ad, err := NewSearx(srv.URL, "")(search.Config{})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	defer ad.Close()

	got, err := ad.Search(context.Background(), "query", 1)
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 valid record, got %d", len(got))
	}
	if got[0]["link"] != "https://example.com/doc" || got[0]["host"] != "example.com" {
		t.Fatalf("unexpected record: %v", got[0])
	}
}

func TestSearx_PaginatesPerPage(t *testing.T) {
	var pagenos []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pagenos = append(pagenos, r.URL.Query().Get("pageno"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"results": []map[string]any{}})
	}))
	defer srv.Close()

	ad, err := NewSearx(srv.URL, "")(search.Config{})
	if err != nil {
		t.Fatalf("construct: %v", err)
	}
	defer ad.Close()

	if _, err := ad.Search(context.Background(), "q", 2); err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(pagenos) != 2 || pagenos[0] != "1" || pagenos[1] != "2" {
		t.Fatalf("unexpected pageno sequence: %v", pagenos)
	}
}
