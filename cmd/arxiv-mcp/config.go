// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-mcp/pkg/types"
)

const envPrefix = "ARXIV_MCP"

// configureViper registers defaults and environment lookup. Every key needs
// a default so that ARXIV_MCP_* variables reach Unmarshal.
func configureViper(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := types.DefaultConfig()

	v.SetDefault("arxiv.base_url", d.Arxiv.BaseURL)
	v.SetDefault("arxiv.min_interval", d.Arxiv.MinInterval)
	v.SetDefault("arxiv.timeout", d.Arxiv.Timeout)
	v.SetDefault("arxiv.pdf_timeout", d.Arxiv.PDFTimeout)
	v.SetDefault("arxiv.user_agent", d.Arxiv.UserAgent)

	v.SetDefault("fulltext.backend", string(d.FullText.Backend))
	v.SetDefault("fulltext.workers", d.FullText.Workers)
	v.SetDefault("fulltext.timeout", d.FullText.Timeout)
	v.SetDefault("fulltext.image", d.FullText.Image)

	v.SetDefault("taxonomy.path", d.Taxonomy.Path)
	v.SetDefault("taxonomy.url", d.Taxonomy.URL)

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.path", d.Server.Path)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// loadConfig decodes the settings held by v.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Arxiv.MinInterval < 0 {
		return types.Config{}, fmt.Errorf("arxiv.min_interval must not be negative, got %s", cfg.Arxiv.MinInterval)
	}
	if cfg.FullText.Workers < 1 {
		return types.Config{}, fmt.Errorf("fulltext.workers must be at least 1, got %d", cfg.FullText.Workers)
	}
	return cfg, nil
}
