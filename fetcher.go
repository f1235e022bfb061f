package webstruct

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single GET request for the URL and returns the
	// response body. The context controls timeout and cancellation.
	// Network failures and non-2xx responses return EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
