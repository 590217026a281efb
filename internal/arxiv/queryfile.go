// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

// QueryFile is the on-disk form of a search and its results. A saved search
// can be printed again later without contacting arXiv.
type QueryFile struct {
	Query   types.SearchParams `yaml:"query"`
	Result  types.SearchResult `yaml:"result"`
	SavedAt time.Time          `yaml:"saved_at"`
}

// WriteQueryFile saves the parameters and result of a search as YAML.
func WriteQueryFile(path string, params types.SearchParams, res types.SearchResult, savedAt time.Time) error {
	qf := QueryFile{Query: params, Result: res, SavedAt: savedAt.UTC()}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing query file: %w", err)
	}
	return nil
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	qf.Result.ResultsReturned = len(qf.Result.Papers)
	return &qf, nil
}
