// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the chemsearch pipeline.
// See docs/ARCHITECTURE.md § Data Structures.
package types

import "fmt"

// Result sources.
const (
	SourceCatalog = "catalog"
	SourcePubChem = "pubchem"
)

// CompoundRecord is the canonical unit flowing through the search pipeline:
// one chemical compound with whatever properties could be resolved for it.
// Only CID is required; every other field is best-effort and may be empty.
type CompoundRecord struct {
	// CID is the stable numeric compound identifier, either a catalog
	// entry's identifier or a PubChem CID. Always positive and unique
	// within a single result set.
	CID int `json:"cid" yaml:"cid"`

	// Name is the display name. Never empty: when no name resolves, it is
	// synthesized from the CID.
	Name string `json:"name" yaml:"name"`

	// MolecularFormula is the Hill-notation formula, empty if unknown.
	MolecularFormula string `json:"molecular_formula" yaml:"molecular_formula"`

	// MolecularWeight is in g/mol. Zero means unknown, never negative.
	MolecularWeight float64 `json:"molecular_weight" yaml:"molecular_weight"`

	// IUPACName is the systematic name, when available.
	IUPACName string `json:"iupac_name,omitempty" yaml:"iupac_name,omitempty"`

	// CanonicalSMILES is the canonical structure string, when available.
	CanonicalSMILES string `json:"canonical_smiles,omitempty" yaml:"canonical_smiles,omitempty"`

	// Source identifies which side of the pipeline produced this record:
	// "catalog" or "pubchem".
	Source string `json:"source" yaml:"source"`
}

// SynthesizedName returns the fallback display name for a compound whose
// name could not be resolved.
func SynthesizedName(cid int) string {
	return fmt.Sprintf("Compound %d", cid)
}
