// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package taxonomy

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// ErrEmptyTaxonomy is returned when a page yields no categories.
var ErrEmptyTaxonomy = errors.New("no categories found")

// Parse reads the arxiv.org category taxonomy page. Each category is an h4
// of the form "cs.AI <span>(Artificial Intelligence)</span>". The group name
// comes from the closest preceding h3 inside the current h2 section, or the
// h2 itself. Codes without a dot become groups with no subcategories.
func Parse(r io.Reader) (types.Taxonomy, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing taxonomy page: %w", err)
	}

	tax := types.Taxonomy{}
	var section, archive string
	doc.Find("h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "h2":
			section = headingText(s)
			archive = ""
		case "h3":
			archive = headingText(s)
		case "h4":
			code, name := categoryHeading(s)
			if code == "" {
				return
			}
			primary, sub, dotted := strings.Cut(code, ".")
			g, ok := tax[primary]
			if !ok {
				g = types.CategoryGroup{Name: orFallback(archive, section), Subcategories: map[string]string{}}
				if !dotted {
					g.Name = orFallback(name, g.Name)
				}
			}
			if dotted && sub != "" {
				g.Subcategories[sub] = name
			}
			tax[primary] = g
		}
	})

	if len(tax) == 0 {
		return nil, ErrEmptyTaxonomy
	}
	return tax, nil
}

// headingText returns a heading's own text without any parenthesized span.
func headingText(s *goquery.Selection) string {
	c := s.Clone()
	c.Find("span").Remove()
	return strings.Join(strings.Fields(c.Text()), " ")
}

// categoryHeading splits "cs.AI (Artificial Intelligence)" into code and name.
func categoryHeading(s *goquery.Selection) (code, name string) {
	name = strings.TrimSpace(s.Find("span").First().Text())
	name = strings.TrimSuffix(strings.TrimPrefix(name, "("), ")")
	fields := strings.Fields(headingText(s))
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.TrimSpace(name)
}

func orFallback(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
