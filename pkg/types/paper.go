// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-mcp server:
// paper records, search parameters and results, and configuration.
package types

// Paper is an immutable snapshot of one arXiv paper at fetch time.
// Optional string fields are empty when absent.
type Paper struct {
	// ID is the arXiv identifier as fetched, version suffix included
	// (e.g. "2301.07041v2").
	ID string `json:"id" yaml:"id"`

	// Title is the whitespace-collapsed paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// PrimaryCategory is the arXiv primary category (e.g. "cs.LG").
	PrimaryCategory string `json:"primary_category,omitempty" yaml:"primary_category,omitempty"`

	// Categories lists the remaining category terms. The primary category is
	// never repeated here.
	Categories []string `json:"categories" yaml:"categories"`

	// Published and Updated are ISO-8601 timestamps exactly as supplied upstream.
	Published string `json:"published" yaml:"published"`
	Updated   string `json:"updated" yaml:"updated"`

	// Summary is the whitespace-collapsed abstract.
	Summary string `json:"summary" yaml:"summary"`

	// Comment is the author comment (page counts, venue notes).
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`

	JournalRef string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`
	DOI        string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// PDFURL is the link advertised with type application/pdf.
	PDFURL string `json:"pdf_url,omitempty" yaml:"pdf_url,omitempty"`

	// AbstractURL is the link advertised with type text/html.
	AbstractURL string `json:"abstract_url,omitempty" yaml:"abstract_url,omitempty"`

	// HTMLURL is derived from ID, never supplied upstream. It is set iff ID is set.
	HTMLURL string `json:"html_url,omitempty" yaml:"html_url,omitempty"`
}
