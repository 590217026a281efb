// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CategoryGroup describes one primary arXiv archive (e.g. "cs") and its
// subject classes keyed by the code after the dot (e.g. "AI").
type CategoryGroup struct {
	Name          string            `json:"name" yaml:"name"`
	Subcategories map[string]string `json:"subcategories" yaml:"subcategories"`
}

// Taxonomy maps primary archive codes to their groups.
type Taxonomy map[string]CategoryGroup
