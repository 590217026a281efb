//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Smoke runs the built CLI against the live arXiv API. Each target issues
// at most a few requests.
type Smoke mg.Namespace

func binary() string { return filepath.Join(binDir, binName) }

// Search runs a small category search.
func (Smoke) Search() error {
	mg.Deps(Build)
	return sh.RunV(binary(), "search", "--max-results", "3", "cat:cs.AI")
}

// Paper fetches one well-known paper's metadata.
func (Smoke) Paper() error {
	mg.Deps(Build)
	return sh.RunV(binary(), "paper", "1706.03762")
}

// Fulltext converts one paper with the in-process PDF backend.
func (Smoke) Fulltext() error {
	mg.Deps(Build)
	return sh.RunV(binary(), "fulltext", "--backend", "pdf", "1706.03762")
}

// Categories lists the cached taxonomy for one archive.
func (Smoke) Categories() error {
	mg.Deps(Build)
	return sh.RunV(binary(), "categories", "list", "--primary", "cs")
}
