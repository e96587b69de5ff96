// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hybrid

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chemsearch/pkg/types"
)

// ResultFile is the on-disk representation of one resolved query. A search
// can be saved to a file and inspected later without re-querying.
type ResultFile struct {
	Query   string                 `yaml:"query"`
	Config  ResultFileConfig       `yaml:"config"`
	Source  Source                 `yaml:"source"`
	Results []types.CompoundRecord `yaml:"results"`
	Summary ResultSummary          `yaml:"summary"`
}

// ResultFileConfig stores the search configuration that produced the results.
type ResultFileConfig struct {
	MaxResults    int    `yaml:"max_results"`
	DebounceDelay string `yaml:"debounce_delay"`
}

// ResultSummary stores result statistics and a timestamp.
type ResultSummary struct {
	Total        int       `yaml:"total"`
	CacheMatches int       `yaml:"cache_matches"`
	APIMatches   int       `yaml:"api_matches"`
	Timestamp    time.Time `yaml:"timestamp"`
}

// WriteResultFile saves a snapshot and the producing configuration to a
// YAML file.
func WriteResultFile(path string, snap Snapshot, cfg types.SearchConfig) error {
	rf := ResultFile{
		Query: snap.Query,
		Config: ResultFileConfig{
			MaxResults:    cfg.MaxResults,
			DebounceDelay: cfg.DebounceDelay.String(),
		},
		Source:  snap.Source,
		Results: snap.Results,
		Summary: ResultSummary{
			Total:        len(snap.Results),
			CacheMatches: len(snap.CacheResults),
			APIMatches:   len(snap.APIResults),
			Timestamp:    time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
