// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "chemsearch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the hybrid search pipeline.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the remote result cap passed to the resolution
	// service (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DebounceDelay is the quiet period after the last query change
	// before remote resolution runs (default 200ms).
	DebounceDelay time.Duration `json:"debounce_delay" yaml:"debounce_delay"`

	// MaxRetries is the number of retry attempts on rate-limited
	// requests (0 = library default).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// CatalogFile optionally replaces the built-in compound catalog with
	// one loaded from a YAML file.
	CatalogFile string `json:"catalog_file,omitempty" yaml:"catalog_file,omitempty"`
}

// StoreConfig holds settings for the offline compound store.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "chemsearch.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config groups all component configurations.
type Config struct {
	Search SearchConfig `json:"search" yaml:"search"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}

// Defaults applied where the zero value means "unset".
const (
	DefaultMaxResults    = 50
	DefaultDebounceDelay = 200 * time.Millisecond
	DefaultTimeout       = 15 * time.Second
	DefaultUserAgent     = "chemsearch/0.1"
)

// WithDefaults returns a copy of cfg with unset fields filled in.
func (c SearchConfig) WithDefaults() SearchConfig {
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = DefaultDebounceDelay
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return c
}
