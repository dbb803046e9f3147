package engines

import (
	"fmt"
	"net/url"

	"github.com/hyperifyio/multisearch/internal/search"
)

// NewBing builds the Bing engine.
func NewBing(cfg search.Config) (search.Adapter, error) {
	return newSERPEngine(cfg, "bing",
		func(q string, page int) string {
			u := "https://www.bing.com/search?q=" + url.QueryEscape(q)
			if page > 1 {
				u += fmt.Sprintf("&first=%d", (page-1)*10+1)
			}
			return u
		},
		selectors{
			container: "li.b_algo",
			title:     "h2",
			link:      "h2 a",
			text:      "div.b_caption p",
		})
}
