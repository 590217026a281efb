// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fulltext

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-mcp/internal/container"
)

const (
	defaultMarkitdownImage = "markitdown:latest"
	markitdownTimeout      = 120 * time.Second
)

// MarkitdownConverter converts PDFs by piping them through the markitdown
// container image.
type MarkitdownConverter struct {
	runtime container.Runtime
	image   string
}

// NewMarkitdownConverter creates a converter that uses rt to run image. It
// verifies that the image exists locally before returning.
func NewMarkitdownConverter(ctx context.Context, rt container.Runtime, image string) (*MarkitdownConverter, error) {
	if image == "" {
		image = defaultMarkitdownImage
	}
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("markitdown image not available in %s: %w", rt.Name(), err)
	}
	return &MarkitdownConverter{runtime: rt, image: image}, nil
}

// Name returns the backend identifier.
func (*MarkitdownConverter) Name() string { return "markitdown" }

// DefaultTimeout returns the conversion limit for the container backend.
func (*MarkitdownConverter) DefaultTimeout() time.Duration { return markitdownTimeout }

// Convert pipes the PDF through the container and returns its Markdown.
func (m *MarkitdownConverter) Convert(ctx context.Context, data []byte) (string, error) {
	var out bytes.Buffer
	if err := m.runtime.Run(ctx, m.image, bytes.NewReader(data), &out); err != nil {
		return "", fmt.Errorf("converting with markitdown: %w", err)
	}

	body := strings.TrimSpace(out.String())
	if body == "" {
		return "", fmt.Errorf("markitdown produced empty output")
	}
	return "\n\n" + body, nil
}
