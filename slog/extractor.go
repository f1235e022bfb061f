package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webstruct"
)

// Ensure LoggingExtractor implements webstruct.StructureExtractor.
var _ webstruct.StructureExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a StructureExtractor with per-document logging.
type LoggingExtractor struct {
	next   webstruct.StructureExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webstruct.StructureExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (structure *webstruct.PageStructure, err error) {
	defer func(begin time.Time) {
		headings := 0
		if structure != nil {
			headings = len(structure.Structure)
		}
		e.logger.Info("extract",
			"bytes", len(html),
			"headings", headings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
