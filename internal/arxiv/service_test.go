// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/internal/httputil"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// fakeFetcher records the parameters of each call and answers with body.
type fakeFetcher struct {
	body  string
	err   error
	calls []url.Values
}

func (f *fakeFetcher) Fetch(_ context.Context, params url.Values) (*Feed, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return ParseFeed(strings.NewReader(f.body))
}

func fixedClock() time.Time { return fixedNow }

func TestService_Search(t *testing.T) {
	f := &fakeFetcher{body: sampleFeed}
	s := NewService(f, WithNow(fixedClock))

	res, err := s.Search(context.Background(), types.SearchParams{
		Query:      "ti:transformer",
		MaxResults: 2,
		SortBy:     types.SortRelevance,
		SortOrder:  types.SortAscending,
		DateFrom:   "2024-01-01",
	})
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	q := f.calls[0]
	assert.Equal(t, "(ti:transformer) AND submittedDate:[202401010000 TO 202503142359]", q.Get("search_query"))
	assert.Equal(t, "2", q.Get("max_results"))
	assert.Equal(t, "relevance", q.Get("sortBy"))
	assert.Equal(t, "ascending", q.Get("sortOrder"))

	assert.Equal(t, 1234, res.TotalResults)
	assert.Equal(t, 2, res.ResultsReturned)
	require.Len(t, res.Papers, 2)
	assert.Equal(t, "1706.03762v7", res.Papers[0].ID)
	assert.Equal(t, "hep-th/9901001v1", res.Papers[1].ID)
}

func TestService_SearchDefaults(t *testing.T) {
	f := &fakeFetcher{body: sampleFeed}
	s := NewService(f, WithNow(fixedClock))

	_, err := s.Search(context.Background(), types.SearchParams{Query: "all:graph", MaxResults: 9000})
	require.NoError(t, err)

	q := f.calls[0]
	assert.Equal(t, "all:graph", q.Get("search_query"), "no date filter means the raw query is sent unchanged")
	assert.Equal(t, "2000", q.Get("max_results"))
	assert.Equal(t, "submittedDate", q.Get("sortBy"))
	assert.Equal(t, "descending", q.Get("sortOrder"))
}

func TestService_SearchEmptyQueryPassedThrough(t *testing.T) {
	f := &fakeFetcher{body: emptyFeed}
	s := NewService(f)

	_, err := s.Search(context.Background(), types.SearchParams{})
	require.NoError(t, err)
	assert.Equal(t, "", f.calls[0].Get("search_query"))
	assert.Equal(t, "1", f.calls[0].Get("max_results"))
}

func TestService_SearchValidationSkipsNetwork(t *testing.T) {
	tests := []struct {
		name   string
		params types.SearchParams
	}{
		{"bad sort_by", types.SearchParams{Query: "x", SortBy: "citations"}},
		{"bad sort_order", types.SearchParams{Query: "x", SortOrder: "up"}},
		{"bad date_from", types.SearchParams{Query: "x", DateFrom: "01-01-2024"}},
		{"bad date_to", types.SearchParams{Query: "x", DateTo: "2024-13-01"}},
		{"reversed range", types.SearchParams{Query: "x", DateFrom: "2024-12-31", DateTo: "2024-01-01"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFetcher{body: sampleFeed}
			_, err := NewService(f, WithNow(fixedClock)).Search(context.Background(), tt.params)

			require.Error(t, err)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.Empty(t, f.calls, "validation failures must not reach the network")
		})
	}
}

func TestService_SearchZeroEntriesKeepsTotal(t *testing.T) {
	s := NewService(&fakeFetcher{body: emptyFeed})

	res, err := s.Search(context.Background(), types.SearchParams{Query: "ti:nothing"})
	require.NoError(t, err)
	assert.Empty(t, res.Papers)
	assert.NotNil(t, res.Papers)
	assert.Equal(t, 42, res.TotalResults)
	assert.Equal(t, 0, res.ResultsReturned)
}

func TestService_SearchBackfillsMissingTotal(t *testing.T) {
	s := NewService(&fakeFetcher{body: noTotalFeed})

	res, err := s.Search(context.Background(), types.SearchParams{Query: "x"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ResultsReturned)
	assert.Equal(t, 1, res.TotalResults)
}

func TestService_SearchBackfillsUndercountedTotal(t *testing.T) {
	for _, reported := range []string{"0", "1"} {
		body := strings.Replace(sampleFeed,
			"<opensearch:totalResults>1234</opensearch:totalResults>",
			"<opensearch:totalResults>"+reported+"</opensearch:totalResults>", 1)
		s := NewService(&fakeFetcher{body: body})

		res, err := s.Search(context.Background(), types.SearchParams{Query: "x"})
		require.NoError(t, err)
		assert.Equal(t, 2, res.ResultsReturned, "reported total %s", reported)
		assert.Equal(t, 2, res.TotalResults, "reported total %s", reported)
	}
}

func TestService_SearchPropagatesUpstreamErrors(t *testing.T) {
	upstream := &UpstreamError{StatusCode: 500, Message: "boom"}
	s := NewService(&fakeFetcher{err: upstream})

	_, err := s.Search(context.Background(), types.SearchParams{Query: "x"})
	assert.ErrorIs(t, err, ErrUpstream)
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Same(t, upstream, ue)
}

func TestService_GetPaper(t *testing.T) {
	f := &fakeFetcher{body: sampleFeed}
	s := NewService(f)

	p, err := s.GetPaper(context.Background(), "1706.03762")
	require.NoError(t, err)
	assert.Equal(t, "1706.03762v7", p.ID)
	assert.Equal(t, "Attention Is All You Need", p.Title)

	require.Len(t, f.calls, 1)
	assert.Equal(t, "1706.03762", f.calls[0].Get("id_list"))
	assert.Equal(t, "1", f.calls[0].Get("max_results"))
	assert.Empty(t, f.calls[0].Get("search_query"))
}

func TestService_GetPaperNotFound(t *testing.T) {
	s := NewService(&fakeFetcher{body: emptyFeed})

	_, err := s.GetPaper(context.Background(), "9999.99999")
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "9999.99999", nf.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "9999.99999")
}

func TestService_EndToEndThroughHTTP(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.Query().Get("search_query")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	cfg := types.DefaultConfig().Arxiv
	cfg.BaseURL = srv.URL
	client := NewClient(cfg, httputil.NewGate(time.Nanosecond))
	today := time.Now()
	s := NewService(client, WithNow(func() time.Time { return today }))

	res, err := s.Search(context.Background(), types.SearchParams{
		Query:      "ti:transformer",
		MaxResults: 2,
		DateFrom:   "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ResultsReturned)
	assert.Equal(t, "(ti:transformer) AND submittedDate:[202401010000 TO "+today.Format("20060102")+"2359]", rawQuery)
}
