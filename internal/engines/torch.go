package engines

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/hyperifyio/multisearch/internal/search"
)

const torchBase = "http://torchdeedp3i2jigzjdmfpn5ttjhthh5wbmda2rr3jvqjg5p77c54dqd.onion"

// NewTorch builds the Torch onion-space engine. It refuses to construct
// without a proxy since onion hosts are unreachable from the clearnet.
func NewTorch(cfg search.Config) (search.Adapter, error) {
	if strings.TrimSpace(cfg.Proxy) == "" {
		return nil, errors.New("torch requires a running tor proxy, e.g. --proxy socks5://127.0.0.1:9050")
	}
	return newSERPEngine(cfg, "torch",
		func(q string, page int) string {
			u := torchBase + "/search?query=" + url.QueryEscape(q)
			if page > 1 {
				u += fmt.Sprintf("&page=%d", page)
			}
			return u
		},
		selectors{
			container: "div.result",
			title:     "h5 a",
			link:      "h5 a",
			text:      "p",
		})
}
