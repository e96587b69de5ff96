// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the local compound catalog",
	Long: `Catalog prints the local compound index: the built-in table, or the
YAML catalog named by --catalog / the config file. Loading validates the
file, so this also serves as a catalog lint. With --export the active
catalog is written to a YAML file as a starting point for a custom one.`,
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := searchConfig(cmd)
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	if exportPath, _ := cmd.Flags().GetString("export"); exportPath != "" {
		if err := cat.WriteFile(exportPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Catalog written to %s\n", exportPath)
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-10s  %-30s  %-14s  %s\n", "CID", "Name", "Formula", "Weight")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 66))
	for _, e := range cat.Entries() {
		fmt.Fprintf(os.Stdout, "%-10d  %-30s  %-14s  %.3f\n", e.CID, e.Name, e.Formula, e.Weight)
	}
	fmt.Fprintf(os.Stdout, "\n%d entries\n", cat.Len())
	return nil
}

func init() {
	catalogCmd.Flags().String("catalog", "", "YAML catalog file replacing the built-in catalog")
	catalogCmd.Flags().String("export", "", "write the active catalog to a YAML file")

	rootCmd.AddCommand(catalogCmd)
}
