package engines

import (
	"fmt"
	"net/url"

	"github.com/hyperifyio/multisearch/internal/search"
)

// NewAsk builds the Ask.com engine.
func NewAsk(cfg search.Config) (search.Adapter, error) {
	return newSERPEngine(cfg, "ask",
		func(q string, page int) string {
			u := "https://www.ask.com/web?q=" + url.QueryEscape(q)
			if page > 1 {
				u += fmt.Sprintf("&page=%d", page)
			}
			return u
		},
		selectors{
			container: "div.PartialSearchResults-item",
			title:     "a.PartialSearchResults-item-title-link",
			link:      "a.PartialSearchResults-item-title-link",
			text:      "p.PartialSearchResults-item-abstract",
		})
}
