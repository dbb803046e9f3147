package engines

import (
	"fmt"
	"net/url"

	"github.com/hyperifyio/multisearch/internal/search"
)

// NewAol builds the AOL engine. AOL serves Yahoo's result markup, redirect
// wrapping included.
func NewAol(cfg search.Config) (search.Adapter, error) {
	e, err := newSERPEngine(cfg, "aol",
		func(q string, page int) string {
			u := "https://search.aol.com/aol/search?q=" + url.QueryEscape(q)
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
