package webstruct

import "context"

// SearchResult is a single normalized web search result. Fields missing
// from the upstream response default to empty strings.
type SearchResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher performs web searches against an external search API.
type Searcher interface {
	// Search forwards query to the search API and returns normalized
	// results preserving the API's ordering.
	// Returns ECONFIG when API credentials are not configured and
	// EUNAVAILABLE when the upstream API fails.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
