// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability sets up structured logging and Prometheus metrics.
package observability

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// NewLogger builds a zerolog logger writing to w. Stdio transport owns
// stdout, so callers pass os.Stderr in production.
func NewLogger(cfg types.LogConfig, w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if f := strings.ToLower(cfg.Format); f == "console" || f == "pretty" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "arxiv-mcp").
		Logger()
}

// ParseLevel converts a level name to a zerolog.Level. Unknown names map to
// info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// WithToolContext adds per-call fields to a logger.
func WithToolContext(logger zerolog.Logger, requestID, tool string) zerolog.Logger {
	return logger.With().
		Str("request_id", requestID).
		Str("tool", tool).
		Logger()
}
