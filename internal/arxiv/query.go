// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

const (
	// MaxResultsCap is the largest page arXiv serves in one response.
	MaxResultsCap = 2000

	// dateLayout is the accepted input format for date bounds.
	dateLayout = "2006-01-02"

	// compactLayout is arXiv's range-filter timestamp format without the
	// HHMM suffix. Compact timestamps sort lexicographically in time order.
	compactLayout = "20060102"

	dayStart = "0000"
	dayEnd   = "2359"

	// corpusFloor is the arXiv launch date, used as the lower bound when only
	// date_to is given.
	corpusFloor = "19910801" + dayStart
)

var sortByValues = map[types.SortBy]string{
	types.SortSubmittedDate: "submittedDate",
	types.SortUpdatedDate:   "lastUpdatedDate",
	types.SortRelevance:     "relevance",
}

var sortOrderValues = map[types.SortOrder]string{
	types.SortDescending: "descending",
	types.SortAscending:  "ascending",
}

// ParseSortBy maps a tool-level sort field name to the upstream sortBy value.
// The empty string selects submitted_date.
func ParseSortBy(s types.SortBy) (string, error) {
	if s == "" {
		s = types.SortSubmittedDate
	}
	if v, ok := sortByValues[s]; ok {
		return v, nil
	}
	return "", &ValidationError{
		Field:   "sort_by",
		Message: fmt.Sprintf("%q is not supported. Valid options: submitted_date, updated_date, relevance", string(s)),
	}
}

// ParseSortOrder maps a tool-level sort direction to the upstream sortOrder
// value. The empty string selects descending.
func ParseSortOrder(s types.SortOrder) (string, error) {
	if s == "" {
		s = types.SortDescending
	}
	if v, ok := sortOrderValues[s]; ok {
		return v, nil
	}
	return "", &ValidationError{
		Field:   "sort_order",
		Message: fmt.Sprintf("%q is not supported. Valid options: descending, ascending", string(s)),
	}
}

// ClampMaxResults bounds n to [1, MaxResultsCap].
func ClampMaxResults(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxResultsCap:
		return MaxResultsCap
	default:
		return n
	}
}

// BuildDateFilter turns optional YYYY-MM-DD bounds into an arXiv
// submittedDate range clause. Both bounds empty yields "" and no error.
//
// An open upper bound means "through today" (relative to now); an open lower
// bound means "since the corpus began" on 1991-08-01.
func BuildDateFilter(dateFrom, dateTo string, now time.Time) (string, error) {
	if dateFrom == "" && dateTo == "" {
		return "", nil
	}

	from := corpusFloor
	if dateFrom != "" {
		d, err := parseDate("date_from", dateFrom)
		if err != nil {
			return "", err
		}
		from = d + dayStart
	}

	to := now.Format(compactLayout) + dayEnd
	if dateTo != "" {
		d, err := parseDate("date_to", dateTo)
		if err != nil {
			return "", err
		}
		to = d + dayEnd
	}

	if from > to {
		return "", &ValidationError{
			Message: fmt.Sprintf("date_from (%s) must not be after date_to (%s)", orEmpty(dateFrom, "1991-08-01"), orEmpty(dateTo, "today")),
		}
	}
	return fmt.Sprintf("submittedDate:[%s TO %s]", from, to), nil
}

// ComposeQuery ANDs a date filter onto a raw query. The raw query is
// parenthesized so its own boolean operators keep their meaning.
func ComposeQuery(raw, dateFilter string) string {
	if dateFilter == "" {
		return raw
	}
	return "(" + raw + ") AND " + dateFilter
}

func parseDate(field, value string) (string, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return "", &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%q is not a valid date. Expected format: YYYY-MM-DD", value),
		}
	}
	return t.Format(compactLayout), nil
}

func orEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
