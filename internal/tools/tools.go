// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools implements the arXiv tool surface: argument validation,
// dispatch to the services, and plain-text rendering of the results.
package tools

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/pdiddy/arxiv-mcp/internal/arxiv"
	"github.com/pdiddy/arxiv-mcp/internal/observability"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// ToolMaxResults caps search_papers below the upstream page limit.
const ToolMaxResults = 10

// Tool names as exposed to clients.
const (
	ToolSearchPapers     = "search_papers"
	ToolGetPaperData     = "get_paper_data"
	ToolGetFullPaperText = "get_full_paper_text"
	ToolListCategories   = "list_categories"
	ToolUpdateCategories = "update_categories"
)

// Searcher answers search and id lookups. *arxiv.Service implements it.
type Searcher interface {
	Search(ctx context.Context, p types.SearchParams) (types.SearchResult, error)
	GetPaper(ctx context.Context, id string) (types.Paper, error)
}

// FullTexter returns a paper as Markdown. *fulltext.Service implements it.
type FullTexter interface {
	GetFullText(ctx context.Context, id string) (string, error)
}

// TaxonomyStore loads and refreshes the category taxonomy.
// *taxonomy.Store implements it.
type TaxonomyStore interface {
	Load() (types.Taxonomy, error)
	Update(ctx context.Context) (types.Taxonomy, error)
}

// SearchInput holds the search_papers arguments.
type SearchInput struct {
	Query      string `json:"query" jsonschema:"search query; supports ti:, abs:, au:, cat: prefixes and AND, OR, ANDNOT"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum results to return (1-10, default 10)"`
	SortBy     string `json:"sort_by,omitempty" jsonschema:"sort field: submitted_date, updated_date or relevance (default submitted_date)" validate:"omitempty,oneof=submitted_date updated_date relevance"`
	SortOrder  string `json:"sort_order,omitempty" jsonschema:"sort direction: descending or ascending (default descending)" validate:"omitempty,oneof=descending ascending"`
	DateFrom   string `json:"date_from,omitempty" jsonschema:"earliest submission date, YYYY-MM-DD"`
	DateTo     string `json:"date_to,omitempty" jsonschema:"latest submission date, YYYY-MM-DD (default today)"`
}

// PaperInput holds the argument of the single-paper tools.
type PaperInput struct {
	PaperID string `json:"paper_id" jsonschema:"arXiv identifier, e.g. 2103.08220 or hep-th/9901001v1" validate:"required"`
}

// CategoriesInput holds the list_categories arguments.
type CategoriesInput struct {
	PrimaryCategory string `json:"primary_category,omitempty" jsonschema:"only list this primary archive, e.g. cs or math"`
}

// InputError is an argument problem detected before any request was sent.
// Invoke reports it to the caller as result text, not as a failure.
type InputError struct {
	Message string
	Cause   error
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return e.Cause }

// Handler implements the tool operations. Every method returns the text shown
// to the caller, an *InputError for bad arguments, or an upstream failure.
type Handler struct {
	papers   Searcher
	fulltext FullTexter
	taxonomy TaxonomyStore
	validate *validator.Validate
	metrics  *observability.Metrics
	logger   zerolog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithMetrics records tool call outcomes.
func WithMetrics(m *observability.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithLogger sets the base logger for tool calls.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// NewHandler returns a Handler over the given services.
func NewHandler(papers Searcher, fulltext FullTexter, tax TaxonomyStore, opts ...Option) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	h := &Handler{
		papers:   papers,
		fulltext: fulltext,
		taxonomy: tax,
		validate: v,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Invoke runs one tool call with a fresh request id. The context passed to fn
// carries the id and a logger tagged with it. An *InputError from fn becomes
// the returned text with a nil error.
func (h *Handler) Invoke(ctx context.Context, tool string, fn func(context.Context) (string, error)) (string, error) {
	id := observability.NewRequestID()
	log := observability.WithToolContext(h.logger, id, tool)
	ctx = log.WithContext(observability.WithRequestID(ctx, id))

	start := time.Now()
	text, err := fn(ctx)

	outcome := observability.OutcomeSuccess
	var inErr *InputError
	switch {
	case errors.As(err, &inErr):
		outcome = observability.OutcomeInvalid
		text, err = inErr.Message, nil
	case err != nil:
		outcome = observability.OutcomeError
	}
	h.metrics.RecordToolCall(tool, outcome)

	ev := log.Info()
	if err != nil {
		ev = log.Error().Err(err)
	}
	ev.Str("outcome", outcome).Dur("elapsed", time.Since(start)).Msg("tool call")
	return text, err
}

// SearchPapers runs search_papers.
func (h *Handler) SearchPapers(ctx context.Context, in SearchInput) (string, error) {
	if err := h.check(in); err != nil {
		return "", err
	}

	// An omitted max_results decodes as 0 and selects the tool default.
	n := in.MaxResults
	switch {
	case n == 0 || n > ToolMaxResults:
		n = ToolMaxResults
	case n < 0:
		n = arxiv.ClampMaxResults(n)
	}

	res, err := h.papers.Search(ctx, types.SearchParams{
		Query:      in.Query,
		MaxResults: n,
		SortBy:     types.SortBy(in.SortBy),
		SortOrder:  types.SortOrder(in.SortOrder),
		DateFrom:   in.DateFrom,
		DateTo:     in.DateTo,
	})
	if errors.Is(err, arxiv.ErrInvalidInput) {
		return "", &InputError{Message: err.Error(), Cause: err}
	}
	if err != nil {
		return "", fmt.Errorf("searching arXiv: %w", err)
	}

	var b strings.Builder
	FormatSearch(res, &b)
	return b.String(), nil
}

// GetPaperData runs get_paper_data.
func (h *Handler) GetPaperData(ctx context.Context, in PaperInput) (string, error) {
	if err := h.check(in); err != nil {
		return "", err
	}

	p, err := h.papers.GetPaper(ctx, strings.TrimSpace(in.PaperID))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	FormatPaper(p, &b)
	return b.String(), nil
}

// GetFullPaperText runs get_full_paper_text. Conversion problems come back
// as text; only metadata lookup errors propagate.
func (h *Handler) GetFullPaperText(ctx context.Context, in PaperInput) (string, error) {
	if err := h.check(in); err != nil {
		return "", err
	}
	return h.fulltext.GetFullText(ctx, strings.TrimSpace(in.PaperID))
}

// ListCategories runs list_categories. A taxonomy that cannot be loaded is
// reported as text pointing at update_categories.
func (h *Handler) ListCategories(ctx context.Context, in CategoriesInput) (string, error) {
	tax, err := h.taxonomy.Load()
	if err != nil {
		h.loggerFor(ctx).Error().Err(err).Msg("loading taxonomy")
		return "Error loading category taxonomy. Try using update_categories tool to refresh it.", nil
	}

	var b strings.Builder
	FormatCategories(tax, strings.TrimSpace(in.PrimaryCategory), &b)
	return b.String(), nil
}

// UpdateCategories runs update_categories. Failures propagate.
func (h *Handler) UpdateCategories(ctx context.Context, _ struct{}) (string, error) {
	tax, err := h.taxonomy.Update(ctx)
	if err != nil {
		return "", fmt.Errorf("updating taxonomy: %w", err)
	}

	var b strings.Builder
	FormatUpdate(tax, &b)
	return b.String(), nil
}

// check validates in and renders the first failure as an *InputError.
func (h *Handler) check(in any) error {
	err := h.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &InputError{Message: err.Error(), Cause: err}
	}
	fe := verrs[0]
	var msg string
	switch fe.Tag() {
	case "oneof":
		opts := strings.Join(strings.Fields(fe.Param()), ", ")
		msg = fmt.Sprintf("Invalid %s value: '%v'. Valid options: %s", fe.Field(), fe.Value(), opts)
	case "required":
		msg = "Missing required argument: " + fe.Field()
	default:
		msg = fmt.Sprintf("Invalid %s value: '%v'", fe.Field(), fe.Value())
	}
	return &InputError{Message: msg, Cause: err}
}

// loggerFor returns the call logger Invoke placed in ctx, or the base logger.
func (h *Handler) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.logger
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
