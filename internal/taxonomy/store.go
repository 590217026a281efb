// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package taxonomy caches the arXiv category taxonomy as a YAML file and
// refreshes it from arxiv.org.
package taxonomy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

const (
	defaultURL   = "https://arxiv.org/category_taxonomy"
	fileName     = "taxonomy.yaml"
	endpointName = "taxonomy"
)

// PageFetcher downloads a page through the shared rate gate.
// *arxiv.Client implements it.
type PageFetcher interface {
	FetchPage(ctx context.Context, endpoint, pageURL string) ([]byte, error)
}

// Store reads and writes the cached taxonomy document.
type Store struct {
	path    string
	url     string
	fetcher PageFetcher
	logger  zerolog.Logger
}

// NewStore returns a store for cfg. An empty cfg.Path selects DefaultPath.
// fetcher may be nil, in which case Update always uses the built-in taxonomy.
func NewStore(cfg types.TaxonomyConfig, fetcher PageFetcher, logger zerolog.Logger) *Store {
	s := &Store{path: cfg.Path, url: cfg.URL, fetcher: fetcher, logger: logger}
	if s.path == "" {
		s.path = DefaultPath()
	}
	if s.url == "" {
		s.url = defaultURL
	}
	return s
}

// DefaultPath returns the taxonomy file under the user cache directory,
// falling back to the working directory.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return fileName
	}
	return filepath.Join(dir, "arxiv-mcp", fileName)
}

// Path returns the location of the cache file.
func (s *Store) Path() string { return s.path }

// Load returns the cached taxonomy. A missing file is created from the
// built-in taxonomy.
func (s *Store) Load() (types.Taxonomy, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info().Str("path", s.path).Msg("taxonomy file not found, creating it")
		tax := Builtin()
		if err := s.write(tax); err != nil {
			return nil, err
		}
		return tax, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading taxonomy %s: %w", s.path, err)
	}

	var tax types.Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("parsing taxonomy %s: %w", s.path, err)
	}
	if len(tax) == 0 {
		return nil, fmt.Errorf("taxonomy %s: %w", s.path, ErrEmptyTaxonomy)
	}
	return tax, nil
}

// Update refreshes the taxonomy from arxiv.org and writes it. A failed
// fetch or parse falls back to the built-in taxonomy; a failed write is
// returned.
func (s *Store) Update(ctx context.Context) (types.Taxonomy, error) {
	tax, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("url", s.url).Msg("taxonomy refresh failed, using built-in categories")
		tax = Builtin()
	}
	if err := s.write(tax); err != nil {
		return nil, err
	}
	s.logger.Info().Str("path", s.path).Int("primary_categories", len(tax)).Msg("taxonomy updated")
	return tax, nil
}

func (s *Store) fetch(ctx context.Context) (types.Taxonomy, error) {
	if s.fetcher == nil {
		return nil, errors.New("no fetcher configured")
	}
	body, err := s.fetcher.FetchPage(ctx, endpointName, s.url)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(body))
}

// write replaces the cache file atomically.
func (s *Store) write(tax types.Taxonomy) error {
	data, err := yaml.Marshal(tax)
	if err != nil {
		return fmt.Errorf("encoding taxonomy: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating taxonomy directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".taxonomy-*.yaml")
	if err != nil {
		return fmt.Errorf("writing taxonomy: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing taxonomy: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing taxonomy: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("writing taxonomy: %w", err)
	}
	return nil
}

// Primaries returns the primary codes of tax in sorted order.
func Primaries(tax types.Taxonomy) []string {
	codes := make([]string, 0, len(tax))
	for code := range tax {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// SubcategoryCodes returns the subcategory codes of g in sorted order.
func SubcategoryCodes(g types.CategoryGroup) []string {
	codes := make([]string, 0, len(g.Subcategories))
	for code := range g.Subcategories {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
