// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package arxiv builds queries against the arXiv export API, fetches and
// parses the Atom feed, and normalizes entries into papers.
package arxiv

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Fetcher issues one upstream query. *Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, params url.Values) (*Feed, error)
}

// Service answers search and lookup requests.
type Service struct {
	fetcher Fetcher

	// now supplies "today" for open-ended date filters.
	now func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithNow replaces the clock used to resolve an open upper date bound.
func WithNow(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService returns a Service backed by f.
func NewService(f Fetcher, opts ...ServiceOption) *Service {
	s := &Service{fetcher: f, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search runs a query. Parameter errors are returned as *ValidationError
// before any request is sent. A page with no entries is a valid, empty
// result that still carries the upstream total. A missing total, or one
// smaller than the page, is replaced by the number of papers returned.
func (s *Service) Search(ctx context.Context, p types.SearchParams) (types.SearchResult, error) {
	sortBy, err := ParseSortBy(p.SortBy)
	if err != nil {
		return types.SearchResult{}, err
	}
	sortOrder, err := ParseSortOrder(p.SortOrder)
	if err != nil {
		return types.SearchResult{}, err
	}
	filter, err := BuildDateFilter(p.DateFrom, p.DateTo, s.now())
	if err != nil {
		return types.SearchResult{}, err
	}

	params := url.Values{}
	params.Set("search_query", ComposeQuery(p.Query, filter))
	params.Set("max_results", strconv.Itoa(ClampMaxResults(p.MaxResults)))
	params.Set("sortBy", sortBy)
	params.Set("sortOrder", sortOrder)

	feed, err := s.fetcher.Fetch(ctx, params)
	if err != nil {
		return types.SearchResult{}, err
	}

	papers := make([]types.Paper, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		papers = append(papers, Normalize(e))
	}

	// The reported total never drops below the page actually returned.
	total, _ := feed.TotalResults()
	if total < len(papers) {
		total = len(papers)
	}
	return types.SearchResult{
		Papers:          papers,
		TotalResults:    total,
		ResultsReturned: len(papers),
	}, nil
}

// GetPaper looks up one paper by arXiv id. No match is a *NotFoundError.
func (s *Service) GetPaper(ctx context.Context, id string) (types.Paper, error) {
	params := url.Values{}
	params.Set("id_list", id)
	params.Set("max_results", "1")

	feed, err := s.fetcher.Fetch(ctx, params)
	if err != nil {
		return types.Paper{}, err
	}
	if len(feed.Entries) == 0 {
		return types.Paper{}, &NotFoundError{ID: id}
	}
	return Normalize(feed.Entries[0]), nil
}
