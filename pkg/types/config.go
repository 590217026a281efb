// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout for metadata calls (default 20s).
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// ArxivConfig holds settings for the upstream arXiv API client.
type ArxivConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the arXiv query endpoint.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// MinInterval is the minimum spacing between upstream requests (default 3s).
	MinInterval time.Duration `json:"min_interval" yaml:"min_interval" mapstructure:"min_interval"`

	// PDFTimeout bounds a single PDF download (default 30s).
	PDFTimeout time.Duration `json:"pdf_timeout" yaml:"pdf_timeout" mapstructure:"pdf_timeout"`
}

// FullTextBackend identifies the PDF-to-text conversion strategy.
type FullTextBackend string

const (
	// BackendPDF extracts text in-process from the PDF content streams.
	BackendPDF FullTextBackend = "pdf"
	// BackendMarkitdown pipes the PDF through the markitdown container image.
	BackendMarkitdown FullTextBackend = "markitdown"
)

// FullTextConfig holds settings for full-text retrieval.
type FullTextConfig struct {
	// Backend selects the conversion strategy: pdf or markitdown.
	Backend FullTextBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// Workers bounds the number of concurrent conversions (default 2).
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`

	// Timeout is the hard wall-clock limit for one conversion. Zero selects
	// the backend default: 60s for pdf, 120s for markitdown.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// Image is the container image used by the markitdown backend.
	Image string `json:"image" yaml:"image" mapstructure:"image"`
}

// TaxonomyConfig holds settings for the category taxonomy cache.
type TaxonomyConfig struct {
	// Path is the YAML file holding the cached taxonomy.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// URL is the arxiv.org page scraped by the update operation.
	URL string `json:"url" yaml:"url" mapstructure:"url"`
}

// ServerConfig holds settings for the streamable HTTP transport.
type ServerConfig struct {
	Host string `json:"host" yaml:"host" mapstructure:"host"`
	Port int    `json:"port" yaml:"port" mapstructure:"port"`

	// Path is the URL path the MCP endpoint is mounted on (default "/mcp").
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups all settings for the server.
type Config struct {
	Arxiv    ArxivConfig    `json:"arxiv" yaml:"arxiv" mapstructure:"arxiv"`
	FullText FullTextConfig `json:"fulltext" yaml:"fulltext" mapstructure:"fulltext"`
	Taxonomy TaxonomyConfig `json:"taxonomy" yaml:"taxonomy" mapstructure:"taxonomy"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns a Config populated with the documented defaults.
func DefaultConfig() Config {
	return Config{
		Arxiv: ArxivConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   20 * time.Second,
				UserAgent: "arxiv-mcp/0.1",
			},
			BaseURL:     "https://export.arxiv.org/api/query",
			MinInterval: 3 * time.Second,
			PDFTimeout:  30 * time.Second,
		},
		FullText: FullTextConfig{
			Backend: BackendPDF,
			Workers: 2,
			Image:   "markitdown:latest",
		},
		Taxonomy: TaxonomyConfig{
			URL: "https://arxiv.org/category_taxonomy",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			Path: "/mcp",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
