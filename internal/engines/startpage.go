package engines

import (
	"fmt"
	"net/url"

	"github.com/hyperifyio/multisearch/internal/search"
)

// NewStartpage builds the Startpage engine.
func NewStartpage(cfg search.Config) (search.Adapter, error) {
	return newSERPEngine(cfg, "startpage",
		func(q string, page int) string {
			u := "https://www.startpage.com/sp/search?query=" + url.QueryEscape(q)
			if page > 1 {
				u += fmt.Sprintf("&page=%d", page)
			}
			return u
		},
		selectors{
			container: "div.w-gl__result, div.result",
			title:     "h3",
			link:      "a.w-gl__result-title, a.result-link",
			text:      "p.w-gl__description, p.description",
		})
}
