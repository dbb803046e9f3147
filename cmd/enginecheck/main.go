// enginecheck runs a single engine directly and dumps its raw records,
// bypassing aggregation. Useful for checking selector tables against the
// live sites.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hyperifyio/multisearch/internal/engines"
	"github.com/hyperifyio/multisearch/internal/search"
)

func main() {
	engine := flag.String("engine", "bing", "Engine name to exercise")
	proxy := flag.String("proxy", os.Getenv("PROXY_URL"), "Proxy URL")
	pages := flag.Int("pages", 1, "Result pages to fetch")
	flag.Parse()

	q := "what is love"
	if flag.NArg() > 0 {
		q = flag.Arg(0)
	}

	selected, err := engines.Resolve([]string{*engine}, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve:", err)
		os.Exit(2)
	}
	adapter, err := selected[0].New(search.Config{Proxy: *proxy, Timeout: 20 * time.Second})
	if err != nil {
		fmt.Fprintln(os.Stderr, "construct:", err)
		os.Exit(1)
	}
	defer adapter.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()
	raws, err := adapter.Search(ctx, q, *pages)
	fmt.Println("err:", err)
	for i, r := range raws {
		fmt.Printf("%d. %s — %s\n", i+1, r["title"], r["link"])
	}
}
