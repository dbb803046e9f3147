// Package output renders a finalized result sequence into one of the
// supported encodings. Encoders are pure: the same input always yields
// byte-identical output.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hyperifyio/multisearch/internal/search"
)

// Format selects the payload encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
)

// excerptChars caps the snippet length in the text format.
const excerptChars = 200

// ParseFormat validates a format name from config or flags.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatText:
		return FormatText, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unknown output format %q (json, csv, text, pdf)", s)
}

// Encode renders results in the given format.
func Encode(format Format, results []search.Result) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(results)
	case FormatCSV:
		return encodeCSV(results)
	case FormatText:
		return []byte(encodeText(results)), nil
	case FormatPDF:
		return encodePDF(results)
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func encodeJSON(results []search.Result) ([]byte, error) {
	if results == nil {
		results = []search.Result{} // empty array, never null
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeCSV(results []search.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"engine", "host", "link", "title", "text"}); err != nil {
		return nil, err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Engine, r.Host, r.Link, r.Title, r.Text}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeText(results []search.Result) string {
	if len(results) == 0 {
		return "No results found.\n"
	}
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "[%d] (%s) %s\n", i+1, r.Engine, r.Title)
		fmt.Fprintf(&b, "    %s\n", r.Link)
		if r.Text != "" {
			fmt.Fprintf(&b, "    %s\n", excerpt(r.Text, excerptChars))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// excerpt truncates by runes so a multi-byte character is never split.
func excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
