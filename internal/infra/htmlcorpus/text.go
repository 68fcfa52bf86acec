package htmlcorpus

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"

	"github.com/aalvaropc/kolovorot/internal/ports"
)

// HTMLText flattens an HTML document to its text nodes.
type HTMLText struct{}

var _ ports.TextExtractor = HTMLText{}

// PlainText returns the NFC-normalized text content of the document,
// without script and style bodies.
func (HTMLText) PlainText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	return norm.NFC.String(doc.Text()), nil
}
