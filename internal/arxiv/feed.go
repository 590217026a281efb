// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// Feed is the parsed arXiv Atom response.
type Feed struct {
	XMLName xml.Name `xml:"http://www.w3.org/2005/Atom feed"`

	// RawTotalResults is opensearch:totalResults as text; see TotalResults.
	RawTotalResults string  `xml:"http://a9.com/-/spec/opensearch/1.1/ totalResults"`
	Entries         []Entry `xml:"http://www.w3.org/2005/Atom entry"`
}

// TotalResults returns the OpenSearch match count and whether it was present
// and integer-parseable.
func (f *Feed) TotalResults() (int, bool) {
	raw := strings.TrimSpace(f.RawTotalResults)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Entry is one paper in the Atom feed, before normalization.
type Entry struct {
	ID        string     `xml:"http://www.w3.org/2005/Atom id"`
	Title     string     `xml:"http://www.w3.org/2005/Atom title"`
	Summary   string     `xml:"http://www.w3.org/2005/Atom summary"`
	Published string     `xml:"http://www.w3.org/2005/Atom published"`
	Updated   string     `xml:"http://www.w3.org/2005/Atom updated"`
	Authors   []Author   `xml:"http://www.w3.org/2005/Atom author"`
	Links     []Link     `xml:"http://www.w3.org/2005/Atom link"`
	Tags      []Category `xml:"http://www.w3.org/2005/Atom category"`

	Comment         string    `xml:"http://arxiv.org/schemas/atom comment"`
	JournalRef      string    `xml:"http://arxiv.org/schemas/atom journal_ref"`
	DOI             string    `xml:"http://arxiv.org/schemas/atom doi"`
	PrimaryCategory *Category `xml:"http://arxiv.org/schemas/atom primary_category"`
}

// Author is an Atom author element.
type Author struct {
	Name string `xml:"http://www.w3.org/2005/Atom name"`
}

// Category is an Atom or arXiv category element.
type Category struct {
	Term string `xml:"term,attr"`
}

// Link is an Atom link element.
type Link struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Type  string `xml:"type,attr"`
	Title string `xml:"title,attr"`
}

// ParseFeed decodes an Atom document. Anything that is not an Atom <feed>
// yields a MalformedResponseError.
func ParseFeed(r io.Reader) (*Feed, error) {
	var feed Feed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, &MalformedResponseError{Cause: err}
	}
	return &feed, nil
}
