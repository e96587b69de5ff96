// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the fixed in-memory compound index queried on every
// keystroke, before any network round trip.
// See docs/ARCHITECTURE.md § Local Index.
package catalog

import (
	"fmt"
	"strings"

	"github.com/pdiddy/chemsearch/pkg/types"
)

// maxMatches caps the number of catalog matches returned per query.
const maxMatches = 10

// Entry is one compound in the local catalog. Entries are read-only after
// construction.
type Entry struct {
	CID     int     `yaml:"cid"`
	Name    string  `yaml:"name"`
	Formula string  `yaml:"formula"`
	Weight  float64 `yaml:"weight"`
}

// Catalog is an immutable, ordered compound index. The zero value is not
// usable; construct with New, Builtin, or LoadFile.
type Catalog struct {
	entries []Entry
}

// New builds a catalog from the given entries, preserving their order.
// The slice is copied so callers cannot mutate the catalog afterwards.
func New(entries []Entry) *Catalog {
	c := &Catalog{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c
}

// Builtin returns the catalog of well-known compounds compiled into the
// binary.
func Builtin() *Catalog {
	return New(builtinEntries)
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the catalog contents in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Search returns compounds whose name or formula contains the query,
// case-insensitively, in catalog order, capped at 10. An empty query
// matches nothing. Search never fails and performs no I/O.
func (c *Catalog) Search(query string) []types.CompoundRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []types.CompoundRecord
	for _, e := range c.entries {
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Formula), q) {
			continue
		}
		matches = append(matches, e.Record())
		if len(matches) == maxMatches {
			break
		}
	}
	return matches
}

// Record converts the entry to the pipeline's record shape.
func (e Entry) Record() types.CompoundRecord {
	return types.CompoundRecord{
		CID:              e.CID,
		Name:             e.Name,
		MolecularFormula: e.Formula,
		MolecularWeight:  e.Weight,
		Source:           types.SourceCatalog,
	}
}

// validate checks the invariants a catalog entry must hold.
func (e Entry) validate() error {
	if e.CID <= 0 {
		return fmt.Errorf("entry %q: cid must be positive, got %d", e.Name, e.CID)
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("entry cid %d: name is required", e.CID)
	}
	if e.Weight < 0 {
		return fmt.Errorf("entry %q: weight must not be negative, got %g", e.Name, e.Weight)
	}
	return nil
}
