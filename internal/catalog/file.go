// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// catalogFile is the on-disk representation of a compound catalog. A site
// can ship its own catalog without rebuilding the binary.
type catalogFile struct {
	Compounds []Entry `yaml:"compounds"`
}

// LoadFile reads a catalog from a YAML file. Entries keep file order. The
// file must contain at least one entry, every entry must carry a positive
// CID and a name, and CIDs must be unique.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	if len(cf.Compounds) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no compounds", path)
	}

	seen := make(map[int]bool, len(cf.Compounds))
	for _, e := range cf.Compounds {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", path, err)
		}
		if seen[e.CID] {
			return nil, fmt.Errorf("catalog file %s: duplicate cid %d", path, e.CID)
		}
		seen[e.CID] = true
	}

	return New(cf.Compounds), nil
}

// WriteFile saves the catalog to a YAML file, e.g. as a starting point for
// a site-specific catalog.
func (c *Catalog) WriteFile(path string) error {
	data, err := yaml.Marshal(catalogFile{Compounds: c.entries})
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
