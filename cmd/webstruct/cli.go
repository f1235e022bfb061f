package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds configuration and services for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	// Search API credentials, read from the environment. Empty values are
	// allowed; the search endpoint reports a configuration error instead
	// of the process refusing to start.
	APIKey   string
	EngineID string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Start the HTTP API server"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string        `default:":5000" help:"Listen address"`
	Static  string        `help:"Directory of static files to serve at /"`
	Timeout time.Duration `default:"10s" help:"Outbound fetch timeout"`
	RPS     float64       `name:"rps" default:"0" help:"Per-host outbound rate limit (0 = unlimited)"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
}
