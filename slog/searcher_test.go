package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/webstruct"
	"github.com/fwojciec/webstruct/mock"
	wsslog "github.com/fwojciec/webstruct/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and result count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]webstruct.SearchResult, error) {
				return []webstruct.SearchResult{{Title: "a"}, {Title: "b"}}, nil
			},
		}

		searcher := wsslog.NewLoggingSearcher(inner, logger)
		results, err := searcher.Search(context.Background(), "golang")

		require.NoError(t, err)
		assert.Len(t, results, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, "query=golang")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string) ([]webstruct.SearchResult, error) {
				return nil, webstruct.Errorf(webstruct.EUNAVAILABLE, "search API error: quota exceeded")
			},
		}

		searcher := wsslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), "golang")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "quota exceeded")
	})
}
