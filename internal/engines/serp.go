package engines

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/hyperifyio/multisearch/internal/search"
)

var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.3 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:123.0) Gecko/20100101 Firefox/123.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
}

// selectors is the per-engine CSS selector table for a scraped result page.
type selectors struct {
	container string
	title     string
	link      string
	text      string
}

// serpEngine is the shared scaffold for engines scraped from HTML result
// pages. Concrete engines supply a page URL builder, a selector table, and
// optionally an unwrapper for engines that wrap outbound links in a
// redirect.
type serpEngine struct {
	name    string
	client  *http.Client
	agents  []string
	nextUA  int
	pageURL func(query string, page int) string
	sel     selectors
	unwrap  func(href string) string
}

func newSERPEngine(cfg search.Config, name string, pageURL func(string, int) string, sel selectors) (*serpEngine, error) {
	client, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	agents := defaultUserAgents
	if cfg.UserAgent != "" {
		agents = []string{cfg.UserAgent}
	}
	return &serpEngine{
		name:    name,
		client:  client,
		agents:  agents,
		pageURL: pageURL,
		sel:     sel,
	}, nil
}

func (e *serpEngine) Name() string { return e.name }

// Close releases the adapter's pooled connections. Called on every exit
// path by the runner, including timeouts and failures.
func (e *serpEngine) Close() error {
	e.client.CloseIdleConnections()
	return nil
}

// Search fetches up to pages consecutive result pages and returns the raw
// records in page order. Links repeated within one run are dropped here;
// cross-engine dedup is the aggregator's job.
func (e *serpEngine) Search(ctx context.Context, query string, pages int) ([]search.Raw, error) {
	if pages < 1 {
		pages = 1
	}
	seen := make(map[string]struct{})
	var out []search.Raw
	for page := 1; page <= pages; page++ {
		recs, err := e.fetchPage(ctx, query, page)
		if err != nil {
			return nil, err
		}
		for _, r := range recs {
			if link := r["link"]; link != "" {
				if _, ok := seen[link]; ok {
					continue
				}
				seen[link] = struct{}{}
			}
			out = append(out, r)
		}
	}
	return out, nil
}

func (e *serpEngine) fetchPage(ctx context.Context, query string, page int) ([]search.Raw, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.pageURL(query, page), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", e.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s status: %d", e.name, resp.StatusCode)
	}
	// SERPs are not always UTF-8; sniff the charset before parsing.
	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}
	return e.extract(doc), nil
}

func (e *serpEngine) extract(doc *goquery.Document) []search.Raw {
	var out []search.Raw
	doc.Find(e.sel.container).Each(func(_ int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(e.sel.title).First().Text())
		if title == "" {
			return
		}
		linkEl := s.Find(e.sel.link).First()
		link, ok := linkEl.Attr("href")
		if !ok || link == "" {
			// Some engines put the address in a cite element instead.
			link = strings.TrimSpace(linkEl.Text())
			if link != "" && !strings.HasPrefix(link, "http") {
				link = "https://" + link
			}
		}
		if e.unwrap != nil {
			link = e.unwrap(link)
		}
		if !strings.HasPrefix(link, "http") {
			return
		}
		host := ""
		if u, err := url.Parse(link); err == nil {
			host = u.Hostname()
		}
		out = append(out, search.Raw{
			"host":  host,
			"link":  link,
			"title": title,
			"text":  strings.TrimSpace(s.Find(e.sel.text).First().Text()),
		})
	})
	return out
}

// userAgent rotates through the configured agents across page fetches.
func (e *serpEngine) userAgent() string {
	ua := e.agents[e.nextUA%len(e.agents)]
	e.nextUA++
	return ua
}
