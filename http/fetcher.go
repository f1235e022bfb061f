// Package http provides an HTTP-based implementation of webstruct.Fetcher
// for retrieving pages from arbitrary third-party servers.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webstruct"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every fetch. Some sites serve degraded or
// empty markup to clients that don't identify as a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements webstruct.Fetcher at compile time.
var _ webstruct.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It does not execute JavaScript, never retries, and never caches.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *hostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit enables per-host rate limiting at rps requests per second.
// Zero or negative rps leaves fetches unlimited.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = newHostLimiter(rps)
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL. Network failures,
// timeouts and non-2xx responses return EUNAVAILABLE. Responses declaring
// a content type the HTML parser cannot consume are treated as fetch
// failures as well.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", webstruct.Errorf(webstruct.EINVALID, "URL is required")
	}

	if f.limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := f.limiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", webstruct.Errorf(webstruct.EUNAVAILABLE, "invalid URL %q: %v", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", webstruct.Errorf(webstruct.EUNAVAILABLE, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", webstruct.Errorf(webstruct.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	if ct := resp.Header.Get("Content-Type"); !isParsable(ct) {
		return "", webstruct.Errorf(webstruct.EUNAVAILABLE, "unsupported content type %q for %s", ct, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", webstruct.Errorf(webstruct.EUNAVAILABLE, "read %s: %v", rawURL, err)
	}

	return string(body), nil
}

// isParsable reports whether a Content-Type header declares something the
// HTML parser can reasonably consume. An absent or malformed header passes;
// plenty of real servers omit or mangle it.
func isParsable(header string) bool {
	if header == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return true
	}
	switch {
	case strings.HasPrefix(mediaType, "text/"):
		return true
	case mediaType == "application/xhtml+xml", mediaType == "application/xml":
		return true
	}
	return false
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
