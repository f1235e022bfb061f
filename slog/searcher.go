package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webstruct"
)

// Ensure LoggingSearcher implements webstruct.Searcher.
var _ webstruct.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-query logging.
type LoggingSearcher struct {
	next   webstruct.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next webstruct.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (results []webstruct.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
