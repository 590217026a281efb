// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func parseSample(t *testing.T) []Entry {
	t.Helper()
	feed, err := ParseFeed(strings.NewReader(sampleFeed))
	require.NoError(t, err)
	return feed.Entries
}

func TestNormalize(t *testing.T) {
	p := Normalize(parseSample(t)[0])

	assert.Equal(t, types.Paper{
		ID:              "1706.03762v7",
		Title:           "Attention Is All You Need",
		Authors:         []string{"Ashish Vaswani", "Noam Shazeer"},
		PrimaryCategory: "cs.CL",
		Categories:      []string{"cs.LG"},
		Published:       "2017-06-12T17:57:34Z",
		Updated:         "2023-08-02T00:41:18Z",
		Summary:         "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks. We propose the Transformer.",
		Comment:         "15 pages, 5 figures",
		JournalRef:      "NeurIPS 2017",
		DOI:             "10.48550/arXiv.1706.03762",
		PDFURL:          "http://arxiv.org/pdf/1706.03762v7",
		AbstractURL:     "http://arxiv.org/abs/1706.03762v7",
		HTMLURL:         "https://arxiv.org/html/1706.03762",
	}, p)
}

func TestNormalize_OldStyleID(t *testing.T) {
	p := Normalize(parseSample(t)[1])

	assert.Equal(t, "hep-th/9901001v1", p.ID)
	assert.Equal(t, "https://arxiv.org/html/hep-th/9901001", p.HTMLURL)
	assert.Equal(t, "hep-th", p.PrimaryCategory)
	assert.Empty(t, p.Categories)
	assert.Empty(t, p.PDFURL)
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, e := range parseSample(t) {
		first := Normalize(e)
		again := Normalize(Entry{
			ID:              "http://arxiv.org/abs/" + first.ID,
			Title:           first.Title,
			Summary:         first.Summary,
			Comment:         first.Comment,
			Published:       first.Published,
			Updated:         first.Updated,
			JournalRef:      first.JournalRef,
			DOI:             first.DOI,
			Authors:         toAuthors(first.Authors),
			Tags:            toCategories(append([]string{first.PrimaryCategory}, first.Categories...)),
			PrimaryCategory: &Category{Term: first.PrimaryCategory},
			Links:           e.Links,
		})
		assert.Equal(t, first, again)
	}
}

func TestNormalize_PrimaryRemovedOnce(t *testing.T) {
	p := Normalize(Entry{
		ID:              "http://arxiv.org/abs/2401.00001v1",
		PrimaryCategory: &Category{Term: "cs.AI"},
		Tags:            toCategories([]string{"cs.LG", "cs.AI", "stat.ML", "cs.AI"}),
	})

	assert.Equal(t, "cs.AI", p.PrimaryCategory)
	assert.Equal(t, []string{"cs.LG", "stat.ML", "cs.AI"}, p.Categories)
}

func TestNormalize_PrimaryNotInTags(t *testing.T) {
	p := Normalize(Entry{
		ID:              "http://arxiv.org/abs/2401.00001",
		PrimaryCategory: &Category{Term: "math.CO"},
		Tags:            toCategories([]string{"cs.DM"}),
	})
	assert.Equal(t, []string{"cs.DM"}, p.Categories)
	assert.Equal(t, "https://arxiv.org/html/2401.00001", p.HTMLURL)
}

func TestNormalize_MissingFields(t *testing.T) {
	p := Normalize(Entry{})

	assert.Empty(t, p.ID)
	assert.Empty(t, p.HTMLURL, "no html url without an id")
	assert.Empty(t, p.PrimaryCategory)
	assert.Empty(t, p.Categories)
	assert.Empty(t, p.Authors)
	assert.Empty(t, p.Title)
}

func TestNormalize_IDWithoutMarker(t *testing.T) {
	p := Normalize(Entry{ID: "2301.07041v2 \n"})
	assert.Equal(t, "2301.07041v2", p.ID)
	assert.Equal(t, "https://arxiv.org/html/2301.07041", p.HTMLURL)
}

func TestStripVersion(t *testing.T) {
	tests := map[string]string{
		"2301.07041v1":       "2301.07041",
		"2301.07041v12":      "2301.07041",
		"2301.07041":         "2301.07041",
		"solv-int/9901001v3": "solv-int/9901001",
		"solv-int/9901001":   "solv-int/9901001",
		"":                   "",
	}
	for in, want := range tests {
		assert.Equal(t, want, StripVersion(in), in)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", collapseWhitespace("  a\n\tb   c \r\n"))
	assert.Equal(t, "", collapseWhitespace(" \n "))
}

func toAuthors(names []string) []Author {
	out := make([]Author, len(names))
	for i, n := range names {
		out[i] = Author{Name: n}
	}
	return out
}

func toCategories(terms []string) []Category {
	out := make([]Category, len(terms))
	for i, term := range terms {
		out[i] = Category{Term: term}
	}
	return out
}
