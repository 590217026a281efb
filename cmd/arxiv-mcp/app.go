// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-mcp/internal/fulltext"
	"github.com/pdiddy/arxiv-mcp/internal/httputil"
	"github.com/pdiddy/arxiv-mcp/internal/observability"
	"github.com/pdiddy/arxiv-mcp/internal/taxonomy"
	"github.com/pdiddy/arxiv-mcp/internal/tools"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// app holds the components shared by every subcommand. One gate is created
// per process and handed to the only client that talks to arXiv.
type app struct {
	cfg      types.Config
	logger   zerolog.Logger
	registry *prometheus.Registry
	metrics  *observability.Metrics

	gate     *httputil.Gate
	client   *arxiv.Client
	papers   *arxiv.Service
	fulltext *fulltext.Service
	pool     *fulltext.Pool
	taxonomy *taxonomy.Store
	handler  *tools.Handler
}

// newApp loads the configuration held by viper and wires the services.
// Logs go to logOut; stdout is reserved for tool output and stdio framing.
func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return buildApp(ctx, cfg, logOut)
}

func buildApp(ctx context.Context, cfg types.Config, logOut io.Writer) (*app, error) {
	a := &app{
		cfg:      cfg,
		logger:   observability.NewLogger(cfg.Log, logOut),
		registry: prometheus.NewRegistry(),
	}
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.metrics = observability.NewMetrics(a.registry)

	a.gate = httputil.NewGate(cfg.Arxiv.MinInterval,
		httputil.WithAdmitHook(func(_ time.Time, waited time.Duration) {
			a.metrics.RecordGateWait(waited)
		}),
	)

	a.client = arxiv.NewClient(cfg.Arxiv, a.gate,
		arxiv.WithMetrics(a.metrics),
		arxiv.WithLogger(a.logger.With().Str("component", "arxiv-client").Logger()),
	)
	a.papers = arxiv.NewService(a.client)

	conv, err := fulltext.NewConverter(ctx, cfg.FullText)
	if err != nil {
		return nil, fmt.Errorf("creating %s converter: %w", cfg.FullText.Backend, err)
	}
	a.pool, err = fulltext.NewPool(cfg.FullText.Workers)
	if err != nil {
		return nil, err
	}
	a.fulltext = fulltext.NewService(a.papers, a.client, conv, a.pool,
		fulltext.WithTimeout(cfg.FullText.Timeout),
		fulltext.WithMetrics(a.metrics),
		fulltext.WithLogger(a.logger.With().Str("component", "fulltext").Logger()),
	)

	a.taxonomy = taxonomy.NewStore(cfg.Taxonomy, a.client,
		a.logger.With().Str("component", "taxonomy").Logger())

	a.handler = tools.NewHandler(a.papers, a.fulltext, a.taxonomy,
		tools.WithMetrics(a.metrics),
		tools.WithLogger(a.logger),
	)

	a.logger.Debug().
		Str("backend", conv.Name()).
		Dur("conversion_timeout", a.fulltext.Timeout()).
		Dur("min_interval", a.gate.Interval()).
		Str("taxonomy_path", a.taxonomy.Path()).
		Msg("services ready")
	return a, nil
}

// close releases the conversion workers.
func (a *app) close() {
	a.pool.Release()
}
