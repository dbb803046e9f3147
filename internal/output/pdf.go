package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/multisearch/internal/search"
)

// encodePDF renders a simple page-flowing report: an index line per result
// with the link and a short snippet underneath. The creation date is pinned
// so the encoder stays deterministic.
func encodePDF(results []search.Result) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Search results (%d)", len(results)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	if len(results) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, "No results found.", "", "L", false)
	}
	for i, r := range results {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(0, 5, fmt.Sprintf("[%d] (%s) %s", i+1, r.Engine, r.Title), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 200)
		pdf.WriteLinkString(5, r.Link, r.Link)
		pdf.Ln(5)
		pdf.SetTextColor(0, 0, 0)
		if r.Text != "" {
			pdf.MultiCell(0, 5, excerpt(r.Text, excerptChars), "", "L", false)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
