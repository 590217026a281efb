// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-mcp/internal/httputil"
	"github.com/pdiddy/arxiv-mcp/internal/observability"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

const (
	defaultTimeout    = 20 * time.Second
	defaultPDFTimeout = 30 * time.Second

	// maxPDFBytes bounds a single PDF download.
	maxPDFBytes = 100 << 20

	// maxErrorBody bounds how much of a failed response is quoted in errors.
	maxErrorBody = 512
)

// Endpoint label values for metrics.
const (
	endpointQuery = "query"
	endpointPDF   = "pdf"
)

// Client talks to the arXiv export API. Every request, metadata or PDF,
// first passes through the shared rate gate.
type Client struct {
	http       *http.Client
	gate       *httputil.Gate
	baseURL    string
	userAgent  string
	timeout    time.Duration
	pdfTimeout time.Duration
	maxPDF     int64
	metrics    *observability.Metrics
	logger     zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) { cl.http = c }
}

// WithMetrics records upstream request metrics.
func WithMetrics(m *observability.Metrics) ClientOption {
	return func(cl *Client) { cl.metrics = m }
}

// WithLogger sets the client logger.
func WithLogger(l zerolog.Logger) ClientOption {
	return func(cl *Client) { cl.logger = l }
}

// WithMaxPDFBytes overrides the PDF download size limit.
func WithMaxPDFBytes(n int64) ClientOption {
	return func(cl *Client) { cl.maxPDF = n }
}

// NewClient returns a client for the endpoint in cfg. The gate must be
// shared with every other component that contacts arXiv.
func NewClient(cfg types.ArxivConfig, gate *httputil.Gate, opts ...ClientOption) *Client {
	c := &Client{
		http:       &http.Client{},
		gate:       gate,
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		timeout:    cfg.Timeout,
		pdfTimeout: cfg.PDFTimeout,
		maxPDF:     maxPDFBytes,
		logger:     zerolog.Nop(),
	}
	if c.baseURL == "" {
		c.baseURL = types.DefaultConfig().Arxiv.BaseURL
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	if c.pdfTimeout <= 0 {
		c.pdfTimeout = defaultPDFTimeout
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch sends one query to the API and parses the Atom response.
func (c *Client) Fetch(ctx context.Context, params url.Values) (*Feed, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	body, err := c.get(ctx, endpointQuery, reqURL, c.timeout, 0)
	if err != nil {
		return nil, err
	}

	feed, err := ParseFeed(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	if _, ok := feed.TotalResults(); !ok {
		c.logger.Warn().
			Str("raw", feed.RawTotalResults).
			Msg("opensearch:totalResults missing or not an integer")
	}
	return feed, nil
}

// FetchPDF downloads a PDF. Redirects are followed and the body is capped.
func (c *Client) FetchPDF(ctx context.Context, pdfURL string) ([]byte, error) {
	return c.get(ctx, endpointPDF, pdfURL, c.pdfTimeout, c.maxPDF)
}

// FetchPage downloads an arxiv.org page through the gate with the metadata
// timeout. The endpoint label names the page in metrics.
func (c *Client) FetchPage(ctx context.Context, endpoint, pageURL string) ([]byte, error) {
	return c.get(ctx, endpoint, pageURL, c.timeout, 0)
}

// get waits for the gate, then issues a single GET bounded by timeout. A
// limit above zero caps the body size. The timeout starts after admission.
func (c *Client) get(ctx context.Context, endpoint, rawURL string, timeout time.Duration, limit int64) ([]byte, error) {
	if err := c.gate.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate gate: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	body, err := c.do(ctx, rawURL, limit)
	outcome := observability.OutcomeSuccess
	if err != nil {
		outcome = observability.OutcomeError
	}
	c.metrics.RecordUpstream(endpoint, outcome, time.Since(start))

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("url", rawURL).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("upstream request")
	return body, err
}

func (c *Client) do(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &UpstreamError{Message: "building request", Cause: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := strings.TrimSpace(string(snippet))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var r io.Reader = resp.Body
	if limit > 0 {
		r = io.LimitReader(resp.Body, limit+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &UpstreamError{Message: "reading response body", Cause: err}
	}
	if limit > 0 && int64(len(body)) > limit {
		return nil, &UpstreamError{Message: fmt.Sprintf("response exceeds %d bytes", limit), Cause: errTooLarge}
	}
	return body, nil
}

var errTooLarge = errors.New("response too large")
