// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/chemsearch/internal/hybrid"
	"github.com/pdiddy/chemsearch/pkg/types"
)

// formatTable writes a snapshot as a human-readable table.
func formatTable(w io.Writer, snap hybrid.Snapshot) {
	if len(snap.Results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-30s  %-14s  %-10s  %s\n",
		"CID", "Name", "Formula", "Weight", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 76))

	for _, r := range snap.Results {
		name := r.Name
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		weight := ""
		if r.MolecularWeight > 0 {
			weight = fmt.Sprintf("%.3f", r.MolecularWeight)
		}
		fmt.Fprintf(w, "%-10d  %-30s  %-14s  %-10s  %s\n",
			r.CID, name, r.MolecularFormula, weight, r.Source)
	}

	fmt.Fprintf(w, "\n%d results (%d catalog, %d remote, source=%s)\n",
		len(snap.Results), len(snap.CacheResults), len(snap.APIResults), snap.Source)
}

// formatJSON writes records as indented JSON.
func formatJSON(w io.Writer, records []types.CompoundRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// formatDetail writes one compound as key/value lines.
func formatDetail(w io.Writer, r types.CompoundRecord) {
	fmt.Fprintf(w, "CID:               %d\n", r.CID)
	fmt.Fprintf(w, "Name:              %s\n", r.Name)
	if r.MolecularFormula != "" {
		fmt.Fprintf(w, "Molecular formula: %s\n", r.MolecularFormula)
	}
	if r.MolecularWeight > 0 {
		fmt.Fprintf(w, "Molecular weight:  %.3f g/mol\n", r.MolecularWeight)
	}
	if r.IUPACName != "" {
		fmt.Fprintf(w, "IUPAC name:        %s\n", r.IUPACName)
	}
	if r.CanonicalSMILES != "" {
		fmt.Fprintf(w, "Canonical SMILES:  %s\n", r.CanonicalSMILES)
	}
	fmt.Fprintf(w, "Source:            %s\n", r.Source)
}
