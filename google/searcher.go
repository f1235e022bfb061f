// Package google provides a webstruct.Searcher backed by the Google Custom
// Search JSON API.
package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fwojciec/webstruct"
)

// DefaultBaseURL is the Custom Search JSON API endpoint.
const DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// resultCount is the fixed number of results requested per query.
const resultCount = 10

// Ensure Searcher implements webstruct.Searcher at compile time.
var _ webstruct.Searcher = (*Searcher)(nil)

// Searcher queries the Google Custom Search JSON API and normalizes its
// responses into webstruct.SearchResult values.
type Searcher struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(u string) Option {
	return func(s *Searcher) {
		s.baseURL = u
	}
}

// WithHTTPClient overrides the HTTP client used for API requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Searcher) {
		s.client = c
	}
}

// NewSearcher creates a Searcher with the given credentials. Empty
// credentials are allowed at construction time; Search reports ECONFIG
// until both are set, so a misconfigured deployment degrades to error
// responses instead of crashing at startup.
func NewSearcher(apiKey, engineID string, opts ...Option) *Searcher {
	s := &Searcher{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  DefaultBaseURL,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// response mirrors the subset of the Custom Search response we consume.
type response struct {
	Error *apiError `json:"error"`
	Items []item    `json:"items"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type item struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Search forwards query to the API and returns normalized results,
// preserving the API's ordering. A missing items array yields an empty,
// non-nil slice.
func (s *Searcher) Search(ctx context.Context, query string) ([]webstruct.SearchResult, error) {
	if query == "" {
		return nil, webstruct.Errorf(webstruct.EINVALID, "Query parameter is required")
	}
	if s.apiKey == "" {
		return nil, webstruct.Errorf(webstruct.ECONFIG, "search API key not configured")
	}
	if s.engineID == "" {
		return nil, webstruct.Errorf(webstruct.ECONFIG, "search engine ID not configured")
	}

	params := url.Values{}
	params.Set("key", s.apiKey)
	params.Set("cx", s.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(resultCount))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, webstruct.Errorf(webstruct.EINTERNAL, "create search request: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, webstruct.Errorf(webstruct.EUNAVAILABLE, "search API request failed: %v", err)
	}
	defer resp.Body.Close()

	// The API reports failures as an error object in the body; decode
	// before checking the status so the message can name the cause.
	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, webstruct.Errorf(webstruct.EUNAVAILABLE, "decode search response: %v", err)
	}

	if body.Error != nil {
		return nil, webstruct.Errorf(webstruct.EUNAVAILABLE, "search API error: %s", body.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, webstruct.Errorf(webstruct.EUNAVAILABLE, "search API returned HTTP %d", resp.StatusCode)
	}

	results := make([]webstruct.SearchResult, 0, len(body.Items))
	for _, it := range body.Items {
		results = append(results, webstruct.SearchResult{
			Title:   it.Title,
			Link:    it.Link,
			Snippet: it.Snippet,
		})
	}
	return results, nil
}
