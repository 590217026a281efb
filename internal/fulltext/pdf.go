// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fulltext

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

const pdfTimeout = 60 * time.Second

// PDFConverter extracts plain text in-process, one "## Page N" section per
// page that has text.
type PDFConverter struct{}

// NewPDFConverter returns the native text extraction backend.
func NewPDFConverter() *PDFConverter { return &PDFConverter{} }

// Name returns the backend identifier.
func (*PDFConverter) Name() string { return "pdf" }

// DefaultTimeout returns the conversion limit for native extraction.
func (*PDFConverter) DefaultTimeout() time.Duration { return pdfTimeout }

// Convert extracts the text of every page. ctx is checked between pages.
func (*PDFConverter) Convert(ctx context.Context, data []byte) (out string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading PDF: %w", err)
	}

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			fmt.Fprintf(&b, "\n\n## Page %d\n\n%s", i, text)
		}
	}
	return b.String(), nil
}
