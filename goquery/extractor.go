// Package goquery provides a goquery-based implementation of
// webstruct.StructureExtractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webstruct"
)

// Ensure Extractor implements webstruct.StructureExtractor at compile time.
var _ webstruct.StructureExtractor = (*Extractor)(nil)

// Extractor extracts heading-based document structure from HTML.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns its heading outline. Script and style
// subtrees are removed before any text extraction so their content never
// appears in the output, even when it contains heading-like markup.
func (e *Extractor) Extract(html string) (*webstruct.PageStructure, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webstruct.Errorf(webstruct.EINTERNAL, "failed to parse HTML: %v", err)
	}

	// Removing the node removes its descendants, so this must happen
	// before extraction rather than filtering text afterwards.
	doc.Find("script, style").Remove()

	structure := webstruct.NewPageStructure()

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		structure.Title = title
	}

	// Find visits matches in document order, interleaving all levels.
	// Selection.Text concatenates descendant text, not just direct text.
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		structure.AddHeading(goquery.NodeName(sel), sel.Text())
	})

	return structure, nil
}
