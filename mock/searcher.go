package mock

import (
	"context"

	"github.com/fwojciec/webstruct"
)

var _ webstruct.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of webstruct.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]webstruct.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]webstruct.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
