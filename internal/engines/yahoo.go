package engines

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hyperifyio/multisearch/internal/search"
)

// NewYahoo builds the Yahoo engine.
func NewYahoo(cfg search.Config) (search.Adapter, error) {
	e, err := newSERPEngine(cfg, "yahoo",
		func(q string, page int) string {
			u := "https://search.yahoo.com/search?p=" + url.QueryEscape(q)
			if page > 1 {
				u += fmt.Sprintf("&b=%d", (page-1)*10+1)
			}
			return u
		},
		selectors{
			container: "div.algo",
			title:     "h3.title a",
			link:      "h3.title a",
			text:      "div.compText p",
		})
	if err != nil {
		return nil, err
	}
	e.unwrap = unwrapYahoo
	return e, nil
}

// unwrapYahoo extracts the destination from Yahoo's r.search.yahoo.com
// redirect links, which embed the target as /RU=<escaped-url>/RK=....
func unwrapYahoo(href string) string {
	const marker = "/RU="
	i := strings.Index(href, marker)
	if i < 0 {
		return href
	}
	rest := href[i+len(marker):]
	if j := strings.Index(rest, "/R"); j >= 0 {
		rest = rest[:j]
	}
	if dec, err := url.QueryUnescape(rest); err == nil && strings.HasPrefix(dec, "http") {
		return dec
	}
	return href
}
