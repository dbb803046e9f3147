package engines

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hyperifyio/multisearch/internal/search"
)

// Searx queries a SearxNG instance's /search JSON API instead of scraping
// HTML. It joins the registry only when an instance URL is configured, so it
// never appears in the default selection.
type Searx struct {
	BaseURL   string
	APIKey    string // optional
	UserAgent string
	client    *http.Client
}

// NewSearx returns a constructor bound to the given instance.
func NewSearx(baseURL, apiKey string) search.Constructor {
	return func(cfg search.Config) (search.Adapter, error) {
		client, err := newHTTPClient(cfg)
		if err != nil {
			return nil, err
		}
		return &Searx{BaseURL: baseURL, APIKey: apiKey, UserAgent: cfg.UserAgent, client: client}, nil
	}
}

func (s *Searx) Name() string { return "searx" }

func (s *Searx) Search(ctx context.Context, query string, pages int) ([]search.Raw, error) {
	if s.BaseURL == "" {
		return nil, fmt.Errorf("missing searx base url")
	}
	if pages < 1 {
		pages = 1
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(u.Path, "/search") {
		u.Path = strings.TrimRight(u.Path, "/") + "/search"
	}
	base := u.Query()
	base.Set("q", query)
	base.Set("format", "json")
	base.Set("categories", "general")
	if s.APIKey != "" {
		base.Set("apikey", s.APIKey)
	}

	var out []search.Raw
	for page := 1; page <= pages; page++ {
		base.Set("pageno", fmt.Sprintf("%d", page))
		u.RawQuery = base.Encode()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		if s.UserAgent != "" {
			req.Header.Set("User-Agent", s.UserAgent)
		}
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		var sr searxResponse
		err = json.NewDecoder(resp.Body).Decode(&sr)
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("searx status: %d", resp.StatusCode)
		}
		if err != nil {
			return nil, err
		}
		for _, r := range sr.Results {
			if r.URL == "" {
				continue
			}
			host := ""
			if pu, err := url.Parse(r.URL); err == nil {
				host = pu.Hostname()
			}
			out = append(out, search.Raw{
				"host":  host,
				"link":  strings.TrimSpace(r.URL),
				"title": strings.TrimSpace(r.Title),
				"text":  strings.TrimSpace(r.Content),
			})
		}
	}
	return out, nil
}

func (s *Searx) Close() error {
	s.client.CloseIdleConnections()
	return nil
}

type searxResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}
