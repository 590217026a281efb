// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortBy selects the upstream sort field. The string values are the names
// accepted at the tool boundary.
type SortBy string

const (
	SortSubmittedDate SortBy = "submitted_date"
	SortUpdatedDate   SortBy = "updated_date"
	SortRelevance     SortBy = "relevance"
)

// SortOrder selects the upstream sort direction.
type SortOrder string

const (
	SortAscending  SortOrder = "ascending"
	SortDescending SortOrder = "descending"
)

// SearchParams holds the structured input of a search.
type SearchParams struct {
	// Query is passed through to arXiv unchanged (advanced syntax such as
	// ti:, au:, cat: and boolean operators is allowed). Empty is not rejected.
	Query string `json:"query" yaml:"query"`

	// MaxResults is clamped to [1, 2000] before the request is built.
	MaxResults int `json:"max_results" yaml:"max_results"`

	SortBy    SortBy    `json:"sort_by" yaml:"sort_by"`
	SortOrder SortOrder `json:"sort_order" yaml:"sort_order"`

	// DateFrom and DateTo are optional YYYY-MM-DD bounds on submission date.
	DateFrom string `json:"date_from,omitempty" yaml:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty" yaml:"date_to,omitempty"`
}

// SearchResult holds one page of search results.
type SearchResult struct {
	Papers []Paper `json:"papers" yaml:"papers"`

	// TotalResults is the upstream-reported match count, which may exceed
	// len(Papers). When upstream omits it, it falls back to ResultsReturned.
	TotalResults int `json:"total_results" yaml:"total_results"`

	// ResultsReturned always equals len(Papers).
	ResultsReturned int `json:"results_returned" yaml:"results_returned"`
}
