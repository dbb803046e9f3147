package engines

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	xproxy "golang.org/x/net/proxy"

	"github.com/hyperifyio/multisearch/internal/search"
)

const defaultTimeout = 10 * time.Second

// newHTTPClient builds a client honoring the adapter config. HTTP and HTTPS
// proxies go through the transport proxy hook; SOCKS proxies (the Tor case)
// are dialed via x/net/proxy so socks5h-style remote resolution works too.
func newHTTPClient(cfg search.Config) (*http.Client, error) {
	tr := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if strings.TrimSpace(cfg.Proxy) != "" {
		u, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "socks5", "socks5h":
			dialer, err := xproxy.FromURL(u, xproxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("proxy dialer: %w", err)
			}
			if cd, ok := dialer.(xproxy.ContextDialer); ok {
				tr.DialContext = cd.DialContext
			} else {
				tr.Dial = dialer.Dial
			}
		case "http", "https":
			tr.Proxy = http.ProxyURL(u)
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %q", u.Scheme)
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout, Transport: tr}, nil
}
