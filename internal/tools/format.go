// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/arxiv-mcp/internal/taxonomy"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// previewLen bounds the abstract preview in search listings.
const previewLen = 200

// FormatSearch writes a numbered listing of a search result to w.
func FormatSearch(res types.SearchResult, w io.Writer) {
	if res.TotalResults == 0 {
		fmt.Fprintln(w, "No papers found matching your query.")
		return
	}

	fmt.Fprintf(w, "Found %d total results", res.TotalResults)
	if res.ResultsReturned < res.TotalResults {
		fmt.Fprintf(w, ", showing first %d", res.ResultsReturned)
	}
	fmt.Fprint(w, ".\n\n")

	for i, p := range res.Papers {
		fmt.Fprintf(w, "%d. %s\n", i+1, p.Title)
		fmt.Fprintf(w, "   Authors: %s\n", strings.Join(p.Authors, ", "))
		fmt.Fprintf(w, "   ID: %s\n", p.ID)
		fmt.Fprintf(w, "   Categories: %s\n", formatCategories(p))
		fmt.Fprintf(w, "   Published: %s\n", p.Published)
		fmt.Fprintf(w, "   Preview: %s\n\n", firstSentence(p.Summary, previewLen))
	}
}

// FormatPaper writes the detailed view of one paper to w.
func FormatPaper(p types.Paper, w io.Writer) {
	fmt.Fprintf(w, "Title: %s\n\n", p.Title)

	fmt.Fprintln(w, "Metadata:")
	fmt.Fprintf(w, "- Authors: %s\n", strings.Join(p.Authors, ", "))
	fmt.Fprintf(w, "- Published: %s\n", p.Published)
	fmt.Fprintf(w, "- Last Updated: %s\n", p.Updated)
	fmt.Fprintf(w, "- Categories: %s\n", formatCategories(p))
	if p.DOI != "" {
		fmt.Fprintf(w, "- DOI: %s\n", p.DOI)
	}
	if p.JournalRef != "" {
		fmt.Fprintf(w, "- Journal Reference: %s\n", p.JournalRef)
	}

	fmt.Fprintf(w, "\nAbstract:\n%s\n", p.Summary)

	fmt.Fprintln(w, "\nAccess Options:")
	fmt.Fprintf(w, "- Abstract page: %s\n", p.AbstractURL)
	if p.HTMLURL != "" {
		fmt.Fprintf(w, "- Full text HTML version: %s\n", p.HTMLURL)
	}
	if p.PDFURL != "" {
		fmt.Fprintf(w, "- PDF version: %s\n", p.PDFURL)
	}

	if p.Comment != "" {
		fmt.Fprintln(w, "\nAdditional Information:")
		fmt.Fprintf(w, "- Comment: %s\n", p.Comment)
	}
}

// FormatCategories writes the taxonomy to w, limited to primary when it is
// non-empty, followed by search usage notes.
func FormatCategories(tax types.Taxonomy, primary string, w io.Writer) {
	fmt.Fprint(w, "arXiv Categories:\n\n")

	for _, code := range taxonomy.Primaries(tax) {
		if primary != "" && code != primary {
			continue
		}
		g := tax[code]
		fmt.Fprintf(w, "%s: %s\n", code, g.Name)
		for _, sub := range taxonomy.SubcategoryCodes(g) {
			fmt.Fprintf(w, "  %s.%s: %s\n", code, sub, g.Subcategories[sub])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "\nUsage in search:")
	fmt.Fprintln(w, "- Search in specific category: cat:cs.AI")
	fmt.Fprintln(w, `- Combine with other terms: "neural networks" AND cat:cs.AI`)
	fmt.Fprintln(w, "- Multiple categories: (cat:cs.AI OR cat:cs.LG)")
	fmt.Fprintln(w, "\nNote: If categories seem outdated, use the update_categories tool to refresh them.")
}

// FormatUpdate writes the summary shown after a taxonomy refresh.
func FormatUpdate(tax types.Taxonomy, w io.Writer) {
	fmt.Fprint(w, "Successfully updated category taxonomy.\n\n")
	fmt.Fprintf(w, "Found %d primary categories:\n", len(tax))
	for _, code := range taxonomy.Primaries(tax) {
		g := tax[code]
		fmt.Fprintf(w, "- %s: %s (%d subcategories)\n", code, g.Name, len(g.Subcategories))
	}
}

// FormatJSON writes v as indented JSON to w.
func FormatJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatCategories(p types.Paper) string {
	var parts []string
	if p.PrimaryCategory != "" {
		parts = append(parts, "Primary: "+p.PrimaryCategory)
	}
	if len(p.Categories) > 0 {
		parts = append(parts, "Additional: "+strings.Join(p.Categories, ", "))
	}
	return strings.Join(parts, ", ")
}

// firstSentence returns text up to the first sentence end found within
// maxLen characters, trying ". " then "! " then "? ". Without one, text is
// cut at maxLen characters and suffixed with "...".
func firstSentence(text string, maxLen int) string {
	for _, end := range []string{". ", "! ", "? "} {
		if pos := strings.Index(text, end); pos != -1 && utf8.RuneCountInString(text[:pos]) < maxLen {
			return text[:pos+1]
		}
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:maxLen]), " \t\n") + "..."
}
