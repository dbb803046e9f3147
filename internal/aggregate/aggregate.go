// Package aggregate flattens per-engine result lists into the final ordered
// sequence, applying the two independent dedup policies.
package aggregate

import (
	"github.com/hyperifyio/multisearch/internal/search"
)

// Merge concatenates the groups in order, preserving each engine's own
// return order, and optionally suppresses repeats by link, by host, or
// both. The two checks are evaluated together before a record is admitted,
// and the first occurrence always wins. Empty keys never count as
// duplicates. With both flags off the output is the exact concatenation.
func Merge(groups [][]search.Result, byURL, byDomain bool) []search.Result {
	seenLinks := make(map[string]struct{})
	seenHosts := make(map[string]struct{})
	out := make([]search.Result, 0, 64)
	for _, g := range groups {
		for _, r := range g {
			if byURL && r.Link != "" {
				if _, ok := seenLinks[r.Link]; ok {
					continue
				}
			}
			if byDomain && r.Host != "" {
				if _, ok := seenHosts[r.Host]; ok {
					continue
				}
			}
			if r.Link != "" {
				seenLinks[r.Link] = struct{}{}
			}
			if r.Host != "" {
				seenHosts[r.Host] = struct{}{}
			}
			out = append(out, r)
		}
	}
	return out
}
