// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/chemsearch/pkg/types"
)

func TestSearchEmptyQuery(t *testing.T) {
	if got := Builtin().Search(""); len(got) != 0 {
		t.Errorf("Search(\"\") = %d results, want 0", len(got))
	}
	if got := Builtin().Search("   "); len(got) != 0 {
		t.Errorf("Search(blank) = %d results, want 0", len(got))
	}
}

func TestSearchByName(t *testing.T) {
	tests := []struct {
		query    string
		wantName string
	}{
		{"ethanol", "Ethanol"},
		{"ETHANOL", "Ethanol"},
		{"EtHaN", "Ethanol"},
		{"caffeine", "Caffeine"},
		{"aspirin", "Aspirin"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Builtin().Search(tt.query)
			if len(got) == 0 {
				t.Fatalf("Search(%q) returned no results", tt.query)
			}
			if got[0].Name != tt.wantName {
				t.Errorf("Search(%q)[0].Name = %q, want %q", tt.query, got[0].Name, tt.wantName)
			}
			if got[0].Source != types.SourceCatalog {
				t.Errorf("Source = %q, want %q", got[0].Source, types.SourceCatalog)
			}
		})
	}
}

func TestSearchByFormula(t *testing.T) {
	got := Builtin().Search("C2H6O")
	if len(got) == 0 {
		t.Fatal("Search(\"C2H6O\") returned no results")
	}
	if got[0].Name != "Ethanol" {
		t.Errorf("Search(\"C2H6O\")[0].Name = %q, want Ethanol", got[0].Name)
	}
	if got[0].MolecularFormula != "C2H6O" {
		t.Errorf("MolecularFormula = %q, want C2H6O", got[0].MolecularFormula)
	}
}

func TestSearchCatalogOrder(t *testing.T) {
	// "acid" matches several entries; they must come back in catalog
	// order, not ranked.
	got := Builtin().Search("acid")
	if len(got) < 2 {
		t.Fatalf("Search(\"acid\") = %d results, want at least 2", len(got))
	}

	byCID := make(map[int]int) // cid → catalog position
	for i, e := range Builtin().Entries() {
		byCID[e.CID] = i
	}
	for i := 1; i < len(got); i++ {
		if byCID[got[i].CID] < byCID[got[i-1].CID] {
			t.Errorf("results out of catalog order at index %d", i)
		}
	}
}

func TestSearchCap(t *testing.T) {
	var entries []Entry
	for i := 1; i <= 25; i++ {
		entries = append(entries, Entry{CID: i, Name: "methyl compound", Formula: "CH4", Weight: 16})
	}
	got := New(entries).Search("methyl")
	if len(got) != 10 {
		t.Errorf("Search returned %d results, want cap of 10", len(got))
	}
	// Cap keeps the first matches in catalog order.
	if got[0].CID != 1 || got[9].CID != 10 {
		t.Errorf("capped results = CIDs %d..%d, want 1..10", got[0].CID, got[9].CID)
	}
}

func TestSearchNoMatch(t *testing.T) {
	if got := Builtin().Search("no such compound"); len(got) != 0 {
		t.Errorf("Search(nonsense) = %d results, want 0", len(got))
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{{CID: 1, Name: "Water", Formula: "H2O", Weight: 18}}
	c := New(entries)
	entries[0].Name = "changed"
	if got := c.Search("water"); len(got) != 1 {
		t.Fatalf("Search(\"water\") = %d results, want 1", len(got))
	}
}

func TestBuiltinEntriesValid(t *testing.T) {
	seen := make(map[int]bool)
	for _, e := range Builtin().Entries() {
		if err := e.validate(); err != nil {
			t.Errorf("builtin entry invalid: %v", err)
		}
		if seen[e.CID] {
			t.Errorf("duplicate builtin cid %d", e.CID)
		}
		seen[e.CID] = true
	}
}

// --- file loading ---

const sampleCatalogYAML = `compounds:
  - cid: 962
    name: Water
    formula: H2O
    weight: 18.015
  - cid: 702
    name: Ethanol
    formula: C2H6O
    weight: 46.07
`

func writeTempCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	c, err := LoadFile(writeTempCatalog(t, sampleCatalogYAML))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	got := c.Search("ethanol")
	if len(got) != 1 || got[0].CID != 702 {
		t.Errorf("Search(\"ethanol\") = %v, want CID 702", got)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", "compounds: []\n"},
		{"duplicate cid", "compounds:\n  - {cid: 1, name: A}\n  - {cid: 1, name: B}\n"},
		{"missing name", "compounds:\n  - {cid: 1}\n"},
		{"bad cid", "compounds:\n  - {cid: -4, name: A}\n"},
		{"negative weight", "compounds:\n  - {cid: 1, name: A, weight: -2}\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFile(writeTempCatalog(t, tt.content)); err == nil {
				t.Error("LoadFile succeeded, want error")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile on missing file succeeded, want error")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Builtin().WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != Builtin().Len() {
		t.Errorf("round trip Len() = %d, want %d", c.Len(), Builtin().Len())
	}
}
