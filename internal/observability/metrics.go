// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arxiv_mcp"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInvalid = "invalid"
	OutcomeTimeout = "timeout"
	OutcomeNoPDF   = "no_pdf"
)

// Metrics holds the Prometheus collectors for the server. All methods are
// safe on a nil receiver so components can run without metrics.
type Metrics struct {
	// UpstreamRequests counts requests to arXiv by endpoint (query, pdf,
	// taxonomy) and outcome.
	UpstreamRequests *prometheus.CounterVec

	// UpstreamDuration observes request latency in seconds by endpoint.
	UpstreamDuration *prometheus.HistogramVec

	// GateWait observes how long callers waited for the rate gate.
	GateWait prometheus.Histogram

	// ToolCalls counts tool invocations by tool and outcome.
	ToolCalls *prometheus.CounterVec

	// Conversions counts full-text conversions by backend and outcome.
	Conversions *prometheus.CounterVec
}

// NewMetrics registers all collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		UpstreamRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Requests sent to arXiv.",
		}, []string{"endpoint", "outcome"}),
		UpstreamDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of requests sent to arXiv.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		}, []string{"endpoint"}),
		GateWait: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gate",
			Name:      "wait_seconds",
			Help:      "Time spent waiting for the upstream rate gate.",
			Buckets:   []float64{0, 0.5, 1, 2, 3, 6, 12, 30, 60},
		}),
		ToolCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tools",
			Name:      "calls_total",
			Help:      "MCP tool invocations.",
		}, []string{"tool", "outcome"}),
		Conversions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fulltext",
			Name:      "conversions_total",
			Help:      "PDF to Markdown conversions.",
		}, []string{"backend", "outcome"}),
	}
}

// RecordUpstream records one upstream request.
func (m *Metrics) RecordUpstream(endpoint, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}

// RecordGateWait records the time one caller spent in the rate gate.
func (m *Metrics) RecordGateWait(d time.Duration) {
	if m == nil {
		return
	}
	m.GateWait.Observe(d.Seconds())
}

// RecordToolCall records one tool invocation.
func (m *Metrics) RecordToolCall(tool, outcome string) {
	if m == nil {
		return
	}
	m.ToolCalls.WithLabelValues(tool, outcome).Inc()
}

// RecordConversion records one full-text conversion attempt.
func (m *Metrics) RecordConversion(backend, outcome string) {
	if m == nil {
		return
	}
	m.Conversions.WithLabelValues(backend, outcome).Inc()
}
