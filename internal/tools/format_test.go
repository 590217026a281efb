// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func samplePaper() types.Paper {
	return types.Paper{
		ID:              "1706.03762v7",
		Title:           "Attention Is All You Need",
		Authors:         []string{"Ashish Vaswani", "Noam Shazeer"},
		PrimaryCategory: "cs.CL",
		Categories:      []string{"cs.LG"},
		Published:       "2017-06-12T17:57:34Z",
		Updated:         "2023-08-02T00:41:18Z",
		Summary:         "The dominant sequence transduction models are based on recurrent networks. We propose the Transformer.",
		Comment:         "15 pages, 5 figures",
		DOI:             "10.48550/arXiv.1706.03762",
		PDFURL:          "http://arxiv.org/pdf/1706.03762v7",
		AbstractURL:     "http://arxiv.org/abs/1706.03762v7",
		HTMLURL:         "https://arxiv.org/html/1706.03762",
	}
}

func TestFormatSearch(t *testing.T) {
	res := types.SearchResult{
		Papers:          []types.Paper{samplePaper()},
		TotalResults:    1234,
		ResultsReturned: 1,
	}

	var buf bytes.Buffer
	FormatSearch(res, &buf)

	want := "Found 1234 total results, showing first 1.\n\n" +
		"1. Attention Is All You Need\n" +
		"   Authors: Ashish Vaswani, Noam Shazeer\n" +
		"   ID: 1706.03762v7\n" +
		"   Categories: Primary: cs.CL, Additional: cs.LG\n" +
		"   Published: 2017-06-12T17:57:34Z\n" +
		"   Preview: The dominant sequence transduction models are based on recurrent networks.\n\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatSearchAllReturned(t *testing.T) {
	res := types.SearchResult{
		Papers:          []types.Paper{samplePaper()},
		TotalResults:    1,
		ResultsReturned: 1,
	}

	var buf bytes.Buffer
	FormatSearch(res, &buf)
	assert.True(t, strings.HasPrefix(buf.String(), "Found 1 total results.\n\n"))
}

func TestFormatSearchEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatSearch(types.SearchResult{}, &buf)
	assert.Equal(t, "No papers found matching your query.\n", buf.String())
}

func TestFormatPaper(t *testing.T) {
	var buf bytes.Buffer
	FormatPaper(samplePaper(), &buf)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Title: Attention Is All You Need\n\nMetadata:\n"))
	assert.Contains(t, out, "- Authors: Ashish Vaswani, Noam Shazeer\n")
	assert.Contains(t, out, "- Last Updated: 2023-08-02T00:41:18Z\n")
	assert.Contains(t, out, "- Categories: Primary: cs.CL, Additional: cs.LG\n")
	assert.Contains(t, out, "- DOI: 10.48550/arXiv.1706.03762\n")
	assert.NotContains(t, out, "Journal Reference")
	assert.Contains(t, out, "\nAbstract:\nThe dominant")
	assert.Contains(t, out, "- Full text HTML version: https://arxiv.org/html/1706.03762\n")
	assert.Contains(t, out, "- PDF version: http://arxiv.org/pdf/1706.03762v7\n")
	assert.True(t, strings.HasSuffix(out, "\nAdditional Information:\n- Comment: 15 pages, 5 figures\n"))
}

func TestFormatPaperOptionalFields(t *testing.T) {
	p := samplePaper()
	p.PDFURL, p.Comment, p.DOI = "", "", ""
	p.JournalRef = "NeurIPS 2017"

	var buf bytes.Buffer
	FormatPaper(p, &buf)
	out := buf.String()

	assert.Contains(t, out, "- Journal Reference: NeurIPS 2017\n")
	assert.NotContains(t, out, "PDF version")
	assert.NotContains(t, out, "DOI")
	assert.NotContains(t, out, "Additional Information")
}

func TestFormatCategories(t *testing.T) {
	tax := types.Taxonomy{
		"math": {Name: "Mathematics", Subcategories: map[string]string{"AG": "Algebraic Geometry"}},
		"cs":   {Name: "Computer Science", Subcategories: map[string]string{"LG": "Machine Learning", "AI": "Artificial Intelligence"}},
	}

	var buf bytes.Buffer
	FormatCategories(tax, "", &buf)
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "arXiv Categories:\n\ncs: Computer Science\n  cs.AI: Artificial Intelligence\n  cs.LG: Machine Learning\n\nmath: Mathematics\n"))
	assert.Contains(t, out, "- Multiple categories: (cat:cs.AI OR cat:cs.LG)\n")
	assert.True(t, strings.HasSuffix(out, "use the update_categories tool to refresh them.\n"))

	buf.Reset()
	FormatCategories(tax, "math", &buf)
	assert.NotContains(t, buf.String(), "Computer Science")
	assert.Contains(t, buf.String(), "math.AG: Algebraic Geometry")
}

func TestFormatUpdate(t *testing.T) {
	tax := types.Taxonomy{
		"cs":   {Name: "Computer Science", Subcategories: map[string]string{"AI": "x", "LG": "y"}},
		"math": {Name: "Mathematics", Subcategories: map[string]string{}},
	}

	var buf bytes.Buffer
	FormatUpdate(tax, &buf)
	assert.Equal(t, "Successfully updated category taxonomy.\n\n"+
		"Found 2 primary categories:\n"+
		"- cs: Computer Science (2 subcategories)\n"+
		"- math: Mathematics (0 subcategories)\n", buf.String())
}

func TestFirstSentence(t *testing.T) {
	long := strings.Repeat("word ", 60)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"period", "First one. Second one.", "First one."},
		{"exclamation", "Wow! Then more", "Wow!"},
		{"question before period", "Why not? Because. Done", "Why not? Because."},
		{"no terminator short", "just a fragment", "just a fragment"},
		{"no terminator long", long, strings.TrimRight(long[:200], " ") + "..."},
		{"terminator too late", long + "end. tail", strings.TrimRight(long[:200], " ") + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstSentence(tt.in, previewLen))
		})
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(samplePaper(), &buf))
	assert.Contains(t, buf.String(), `"id": "1706.03762v7"`)
}
