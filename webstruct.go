// Package webstruct provides a web search and page structure service.
// It exposes two HTTP endpoints: one proxies a web-search API and returns
// normalized results, the other fetches an arbitrary URL and extracts the
// heading-based structure of its HTML.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, google/, gin/).
package webstruct
