package webstruct

import "strings"

// NoTitle is the sentinel title reported when a document has no <title>.
const NoTitle = "No title found"

// headingTags lists the heading element names in level order.
var headingTags = [...]string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Heading is a single entry in a document outline.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Headings buckets heading text by level tag ("h1".."h6"). All six keys are
// always present, even when empty, so consumers can iterate levels without
// existence checks. Each bucket preserves document order within its level.
type Headings map[string][]string

// NewHeadings returns a Headings map with all six level keys initialized
// to empty slices.
func NewHeadings() Headings {
	h := make(Headings, len(headingTags))
	for _, tag := range headingTags {
		h[tag] = []string{}
	}
	return h
}

// PageStructure is the heading-based outline of an HTML document.
// Headings and Structure are redundant projections of the same ordered
// heading list: every Structure entry has a matching entry in the bucket
// for its level, with identical text and relative order.
type PageStructure struct {
	Title     string    `json:"title"`
	Headings  Headings  `json:"headings"`
	Structure []Heading `json:"structure"`
}

// NewPageStructure returns an empty PageStructure with all heading buckets
// initialized and the sentinel title.
func NewPageStructure() *PageStructure {
	return &PageStructure{
		Title:     NoTitle,
		Headings:  NewHeadings(),
		Structure: []Heading{},
	}
}

// AddHeading appends a heading to both views, keeping them consistent.
// Text is trimmed first; headings that are empty after trimming contribute
// to neither view. Tags other than h1..h6 are ignored.
func (p *PageStructure) AddHeading(tag, text string) {
	level, ok := headingLevel(tag)
	if !ok {
		return
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	p.Headings[tag] = append(p.Headings[tag], text)
	p.Structure = append(p.Structure, Heading{Level: level, Text: text})
}

// headingLevel maps a heading tag name to its numeric level (1..6).
func headingLevel(tag string) (int, bool) {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0, false
	}
	return int(tag[1] - '0'), true
}

// StructureExtractor extracts a heading outline from raw HTML.
type StructureExtractor interface {
	// Extract parses html and returns the document's heading structure.
	// Script and style content never contributes to the result.
	Extract(html string) (*PageStructure, error)
}
