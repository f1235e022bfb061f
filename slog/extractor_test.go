package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/webstruct"
	"github.com/fwojciec/webstruct/mock"
	wsslog "github.com/fwojciec/webstruct/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs heading count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StructureExtractor{
			ExtractFn: func(html string) (*webstruct.PageStructure, error) {
				s := webstruct.NewPageStructure()
				s.AddHeading("h1", "Title")
				s.AddHeading("h2", "Section")
				return s, nil
			},
		}

		extractor := wsslog.NewLoggingExtractor(inner, logger)
		structure, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		assert.Len(t, structure.Structure, 2)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "headings=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.StructureExtractor{
			ExtractFn: func(html string) (*webstruct.PageStructure, error) {
				return nil, webstruct.Errorf(webstruct.EINTERNAL, "failed to parse HTML")
			},
		}

		extractor := wsslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("garbage")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "failed to parse HTML")
	})
}
