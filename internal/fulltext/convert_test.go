// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fulltext

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

func TestPDFConverter(t *testing.T) {
	data, err := os.ReadFile("testdata/hello.pdf")
	require.NoError(t, err)

	c := NewPDFConverter()
	assert.Equal(t, "pdf", c.Name())
	assert.Equal(t, pdfTimeout, c.DefaultTimeout())

	out, err := c.Convert(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\n\n## Page 1\n\n"), out)
	assert.Contains(t, out, "Hello")
	assert.NotContains(t, out, "## Page 2", "blank pages are skipped")
}

func TestPDFConverter_Invalid(t *testing.T) {
	_, err := NewPDFConverter().Convert(context.Background(), []byte("this is not a pdf"))
	assert.Error(t, err)

	_, err = NewPDFConverter().Convert(context.Background(), nil)
	assert.Error(t, err)
}

func TestPDFConverter_CancelledContext(t *testing.T) {
	data, err := os.ReadFile("testdata/hello.pdf")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewPDFConverter().Convert(ctx, data)
	assert.ErrorIs(t, err, context.Canceled)
}

// fakeRuntime is a container.Runtime that runs a function in place of a
// container.
type fakeRuntime struct {
	haveImage bool
	image     string
	run       func(ctx context.Context, stdin io.Reader, stdout io.Writer) error
}

func (f *fakeRuntime) Name() string                   { return "fake" }
func (f *fakeRuntime) Available(context.Context) bool { return true }
func (f *fakeRuntime) ImageExists(_ context.Context, image string) error {
	if !f.haveImage {
		return errors.New("no such image " + image)
	}
	return nil
}
func (f *fakeRuntime) Run(ctx context.Context, image string, stdin io.Reader, stdout io.Writer) error {
	f.image = image
	return f.run(ctx, stdin, stdout)
}

func TestMarkitdownConverter(t *testing.T) {
	rt := &fakeRuntime{
		haveImage: true,
		run: func(_ context.Context, stdin io.Reader, stdout io.Writer) error {
			in, _ := io.ReadAll(stdin)
			_, _ = io.WriteString(stdout, "  # Converted\n\n"+string(in)+"\n")
			return nil
		},
	}
	c, err := NewMarkitdownConverter(context.Background(), rt, "")
	require.NoError(t, err)
	assert.Equal(t, "markitdown", c.Name())
	assert.Equal(t, markitdownTimeout, c.DefaultTimeout())

	out, err := c.Convert(context.Background(), []byte("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "\n\n# Converted\n\n%PDF", out)
	assert.Equal(t, defaultMarkitdownImage, rt.image)
}

func TestMarkitdownConverter_Errors(t *testing.T) {
	_, err := NewMarkitdownConverter(context.Background(), &fakeRuntime{}, "custom:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom:1")

	empty := &fakeRuntime{haveImage: true, run: func(context.Context, io.Reader, io.Writer) error { return nil }}
	c, err := NewMarkitdownConverter(context.Background(), empty, "custom:1")
	require.NoError(t, err)
	_, err = c.Convert(context.Background(), []byte("%PDF"))
	assert.ErrorContains(t, err, "empty output")

	failing := &fakeRuntime{haveImage: true, run: func(context.Context, io.Reader, io.Writer) error {
		return errors.New("exit status 1")
	}}
	c, err = NewMarkitdownConverter(context.Background(), failing, "custom:1")
	require.NoError(t, err)
	_, err = c.Convert(context.Background(), []byte("%PDF"))
	assert.ErrorContains(t, err, "exit status 1")
}

func TestNewConverter(t *testing.T) {
	c, err := NewConverter(context.Background(), types.FullTextConfig{})
	require.NoError(t, err)
	assert.Equal(t, "pdf", c.Name())

	c, err = NewConverter(context.Background(), types.FullTextConfig{Backend: types.BackendPDF})
	require.NoError(t, err)
	assert.IsType(t, &PDFConverter{}, c)

	_, err = NewConverter(context.Background(), types.FullTextConfig{Backend: "ocr"})
	assert.ErrorContains(t, err, `unknown fulltext backend "ocr"`)
}

func TestRenderDocument(t *testing.T) {
	paper := types.Paper{
		Title:     "Attention Is All You Need",
		Authors:   []string{"Ashish Vaswani", "Noam Shazeer"},
		Published: "2017-06-12T17:57:34Z",
	}
	got := renderDocument(paper, "1706.03762", "\n\n## Page 1\n\nBody")
	want := "# Attention Is All You Need\n\n" +
		"**Authors:** Ashish Vaswani, Noam Shazeer\n\n" +
		"**Published:** 2017-06-12T17:57:34Z\n\n" +
		"**arXiv ID:** 1706.03762\n\n" +
		"---\n\n" +
		"\n\n## Page 1\n\nBody"
	assert.Equal(t, want, got)
}
