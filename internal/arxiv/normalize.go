// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"regexp"
	"strings"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// htmlBaseURL is the arXiv HTML rendering of a paper; append the id without
// its version suffix.
const htmlBaseURL = "https://arxiv.org/html/"

const (
	mimePDF  = "application/pdf"
	mimeHTML = "text/html"
)

var versionSuffix = regexp.MustCompile(`v\d+$`)

// Normalize maps a parsed feed entry to a Paper. It performs no I/O.
func Normalize(e Entry) types.Paper {
	p := types.Paper{
		ID:         extractID(e.ID),
		Title:      collapseWhitespace(e.Title),
		Summary:    collapseWhitespace(e.Summary),
		Comment:    collapseWhitespace(e.Comment),
		JournalRef: strings.TrimSpace(e.JournalRef),
		DOI:        strings.TrimSpace(e.DOI),
		Published:  strings.TrimSpace(e.Published),
		Updated:    strings.TrimSpace(e.Updated),
		Authors:    make([]string, 0, len(e.Authors)),
		Categories: make([]string, 0, len(e.Tags)),
	}

	for _, a := range e.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			p.Authors = append(p.Authors, name)
		}
	}

	for _, l := range e.Links {
		switch l.Type {
		case mimePDF:
			p.PDFURL = l.Href
		case mimeHTML:
			p.AbstractURL = l.Href
		}
	}

	if p.ID != "" {
		p.HTMLURL = htmlBaseURL + StripVersion(p.ID)
	}

	if e.PrimaryCategory != nil {
		p.PrimaryCategory = strings.TrimSpace(e.PrimaryCategory.Term)
	}
	for _, c := range e.Tags {
		if term := strings.TrimSpace(c.Term); term != "" {
			p.Categories = append(p.Categories, term)
		}
	}
	p.Categories = removeFirst(p.Categories, p.PrimaryCategory)

	return p
}

// StripVersion removes a trailing "vN" version suffix from an arXiv id.
func StripVersion(id string) string {
	return versionSuffix.ReplaceAllString(id, "")
}

// extractID returns the part of an entry id URL after "/abs/", or the whole
// value when the marker is missing.
// ("http://arxiv.org/abs/2301.07041v1" -> "2301.07041v1")
func extractID(idURL string) string {
	const marker = "/abs/"
	if i := strings.LastIndex(idURL, marker); i >= 0 {
		idURL = idURL[i+len(marker):]
	}
	return strings.TrimRightFunc(idURL, isSpace)
}

// removeFirst drops the first occurrence of term. Later duplicates stay.
func removeFirst(terms []string, term string) []string {
	if term == "" {
		return terms
	}
	for i, t := range terms {
		if t == term {
			return append(terms[:i:i], terms[i+1:]...)
		}
	}
	return terms
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
