// Package gin provides the HTTP API surface for webstruct using the Gin
// web framework. It exposes the search proxy and page structure endpoints,
// converts domain errors into JSON error envelopes, and optionally serves
// a static frontend.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/webstruct"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultAddr is the default listen address.
const DefaultAddr = ":5000"

// shutdownTimeout bounds how long in-flight requests may run during shutdown.
const shutdownTimeout = 5 * time.Second

// Server serves the /api/search and /api/scrape endpoints.
// Request handling is stateless; every request is independent.
type Server struct {
	fetcher   webstruct.Fetcher
	extractor webstruct.StructureExtractor
	searcher  webstruct.Searcher
	logger    *slog.Logger

	addr      string
	staticDir string
	router    *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to DefaultAddr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithStaticDir serves the given directory at / for paths that don't match
// an API route. Empty disables static serving.
func WithStaticDir(dir string) Option {
	return func(s *Server) {
		s.staticDir = dir
	}
}

// NewServer creates a Server wired with the given implementations.
func NewServer(fetcher webstruct.Fetcher, extractor webstruct.StructureExtractor, searcher webstruct.Searcher, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		fetcher:   fetcher,
		extractor: extractor,
		searcher:  searcher,
		logger:    slog.Default(),
		addr:      DefaultAddr,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestID())
	r.Use(s.requestLogger())
	r.Use(s.cors())

	r.GET("/api/search", s.handleSearch)
	r.POST("/api/search", s.handleSearch)
	r.GET("/api/scrape", s.handleScrape)
	r.POST("/api/scrape", s.handleScrape)

	if s.staticDir != "" {
		// NoRoute keeps the file server from conflicting with /api routes.
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(s.staticDir))))
	}

	s.router = r
	return s
}

// Handler returns the underlying http.Handler. Exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until ctx is canceled or the listener
// fails. Shutdown waits for in-flight requests up to shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// requestBody is the JSON body accepted by POST requests. Both endpoints
// share it; each handler reads only the fields it cares about.
type requestBody struct {
	Query string `json:"query"`
	Q     string `json:"q"`
	URL   string `json:"url"`
}

// handleScrape fetches a URL and returns its heading structure.
func (s *Server) handleScrape(c *gin.Context) {
	var rawURL string
	if c.Request.Method == http.MethodPost {
		var body requestBody
		if err := c.ShouldBindJSON(&body); err == nil {
			rawURL = body.URL
		}
	} else {
		rawURL = c.Query("url")
	}

	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	html, err := s.fetcher.Fetch(c.Request.Context(), rawURL)
	if err != nil {
		s.error(c, err)
		return
	}

	content, err := s.extractor.Extract(html)
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"url":     rawURL,
		"content": content,
	})
}

// handleSearch proxies a query to the external search API.
func (s *Server) handleSearch(c *gin.Context) {
	var query string
	if c.Request.Method == http.MethodPost {
		var body requestBody
		if err := c.ShouldBindJSON(&body); err == nil {
			query = body.Query
			if query == "" {
				query = body.Q
			}
		}
	} else {
		query = c.Query("q")
		if query == "" {
			query = c.Query("query")
		}
	}

	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required"})
		return
	}

	results, err := s.searcher.Search(c.Request.Context(), query)
	if err != nil {
		s.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"query":   query,
		"results": results,
	})
}

// error converts a domain error into a JSON error envelope. Payloads are
// never mixed with errors.
func (s *Server) error(c *gin.Context, err error) {
	c.JSON(statusFromCode(webstruct.ErrorCode(err)), gin.H{
		"error": webstruct.ErrorMessage(err),
	})
}

// statusFromCode maps domain error codes to HTTP status codes.
func statusFromCode(code string) int {
	if code == webstruct.EINVALID {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// requestID attaches a unique ID to each request for log correlation.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs each request with method, path, status and duration.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		begin := time.Now()
		c.Next()
		s.logger.Info("request",
			"id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(begin),
		)
	}
}

// cors allows browser clients served from other origins to call the API.
func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
