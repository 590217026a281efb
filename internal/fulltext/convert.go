// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fulltext

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-mcp/internal/container"
	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// Converter transforms PDF bytes into Markdown. Different backends (native
// text extraction, markitdown) implement this interface. Implementations
// must return promptly once ctx is done.
type Converter interface {
	// Name identifies the backend in logs and metrics.
	Name() string

	// DefaultTimeout is the hard limit applied when none is configured.
	DefaultTimeout() time.Duration

	// Convert returns the Markdown body of the document, without the
	// paper header.
	Convert(ctx context.Context, pdf []byte) (string, error)
}

// NewConverter builds the converter selected by cfg.Backend. The markitdown
// backend requires docker or podman and the configured image.
func NewConverter(ctx context.Context, cfg types.FullTextConfig) (Converter, error) {
	switch cfg.Backend {
	case "", types.BackendPDF:
		return NewPDFConverter(), nil
	case types.BackendMarkitdown:
		rt, err := container.DetectRuntime(ctx)
		if err != nil {
			return nil, err
		}
		return NewMarkitdownConverter(ctx, rt, cfg.Image)
	default:
		return nil, fmt.Errorf("unknown fulltext backend %q (valid: %s, %s)", cfg.Backend, types.BackendPDF, types.BackendMarkitdown)
	}
}

// renderDocument prepends the paper header to a converted body.
func renderDocument(paper types.Paper, id, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", paper.Title)
	fmt.Fprintf(&b, "**Authors:** %s\n\n", strings.Join(paper.Authors, ", "))
	fmt.Fprintf(&b, "**Published:** %s\n\n", paper.Published)
	fmt.Fprintf(&b, "**arXiv ID:** %s\n\n", id)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String()
}
