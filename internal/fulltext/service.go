// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fulltext downloads a paper's PDF and converts it to Markdown on a
// bounded worker pool. Failures after the metadata lookup are reported as
// readable text rather than errors.
package fulltext

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-mcp/internal/observability"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// PaperGetter looks up paper metadata. *arxiv.Service implements it.
type PaperGetter interface {
	GetPaper(ctx context.Context, id string) (types.Paper, error)
}

// PDFFetcher downloads PDF bytes. *arxiv.Client implements it.
type PDFFetcher interface {
	FetchPDF(ctx context.Context, pdfURL string) ([]byte, error)
}

// Service produces the full text of a paper.
type Service struct {
	papers    PaperGetter
	pdfs      PDFFetcher
	converter Converter
	pool      *Pool
	timeout   time.Duration
	metrics   *observability.Metrics
	logger    zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout overrides the converter's default hard limit.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithMetrics records conversion outcomes.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService wires the full-text pipeline.
func NewService(papers PaperGetter, pdfs PDFFetcher, conv Converter, pool *Pool, opts ...Option) *Service {
	s := &Service{
		papers:    papers,
		pdfs:      pdfs,
		converter: conv,
		pool:      pool,
		timeout:   conv.DefaultTimeout(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Timeout returns the hard conversion limit in effect.
func (s *Service) Timeout() time.Duration { return s.timeout }

// GetFullText returns the paper as Markdown. Metadata lookup errors are
// returned as errors. A missing PDF link, a failed download, a conversion
// failure and a timeout all yield a descriptive string and a nil error.
func (s *Service) GetFullText(ctx context.Context, id string) (string, error) {
	paper, err := s.papers.GetPaper(ctx, id)
	if err != nil {
		return "", err
	}
	if paper.PDFURL == "" {
		s.metrics.RecordConversion(s.converter.Name(), observability.OutcomeNoPDF)
		return fmt.Sprintf("No PDF URL found for paper: %s", id), nil
	}

	log := s.logger.With().Str("paper_id", id).Str("backend", s.converter.Name()).Logger()

	data, err := s.pdfs.FetchPDF(ctx, paper.PDFURL)
	if err != nil {
		log.Error().Err(err).Msg("downloading PDF")
		s.metrics.RecordConversion(s.converter.Name(), observability.OutcomeError)
		return conversionFailed(err), nil
	}

	start := time.Now()
	body, err := s.pool.Run(ctx, s.timeout, func(ctx context.Context) (string, error) {
		return s.converter.Convert(ctx, data)
	})
	switch {
	case errors.Is(err, ErrConversionTimeout):
		msg := fmt.Sprintf("Timeout: PDF conversion exceeded %g seconds for paper %s", s.timeout.Seconds(), id)
		log.Error().Dur("timeout", s.timeout).Msg(msg)
		s.metrics.RecordConversion(s.converter.Name(), observability.OutcomeTimeout)
		return msg, nil
	case err != nil:
		log.Error().Err(err).Msg("converting PDF")
		s.metrics.RecordConversion(s.converter.Name(), observability.OutcomeError)
		return conversionFailed(err), nil
	}

	log.Info().
		Int("pdf_bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("converted paper")
	s.metrics.RecordConversion(s.converter.Name(), observability.OutcomeSuccess)
	return renderDocument(paper, id, body), nil
}

func conversionFailed(err error) string {
	return "Error while converting paper to Markdown: " + err.Error()
}
