package main

import (
	"log/slog"

	"github.com/fwojciec/webstruct"
	wsgin "github.com/fwojciec/webstruct/gin"
	"github.com/fwojciec/webstruct/google"
	wsgoquery "github.com/fwojciec/webstruct/goquery"
	wshttp "github.com/fwojciec/webstruct/http"
	wsslog "github.com/fwojciec/webstruct/slog"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{Level: level}))

	fetchOpts := []wshttp.Option{wshttp.WithTimeout(c.Timeout)}
	if c.RPS > 0 {
		fetchOpts = append(fetchOpts, wshttp.WithRateLimit(c.RPS))
	}
	var fetcher webstruct.Fetcher = wshttp.NewFetcher(fetchOpts...)
	fetcher = wsslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	var extractor webstruct.StructureExtractor = wsgoquery.NewExtractor()
	extractor = wsslog.NewLoggingExtractor(extractor, logger)

	if deps.APIKey == "" || deps.EngineID == "" {
		logger.Warn("search credentials not configured; /api/search will return errors",
			"hint", "set GOOGLE_API_KEY and GOOGLE_SEARCH_ENGINE_ID")
	}
	var searcher webstruct.Searcher = google.NewSearcher(deps.APIKey, deps.EngineID)
	searcher = wsslog.NewLoggingSearcher(searcher, logger)

	server := wsgin.NewServer(fetcher, extractor, searcher,
		wsgin.WithAddr(c.Addr),
		wsgin.WithLogger(logger),
		wsgin.WithStaticDir(c.Static),
	)

	logger.Info("server listening", "addr", c.Addr)
	return server.Run(deps.Ctx)
}
