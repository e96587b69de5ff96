// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the chemsearch CLI.
// See docs/ARCHITECTURE.md § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chemsearch/internal/catalog"
	"github.com/pdiddy/chemsearch/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the chemsearch CLI.
var rootCmd = &cobra.Command{
	Use:   "chemsearch",
	Short: "Hybrid local/remote chemical compound search",
	Long: `chemsearch resolves partial chemical names and formulas into compound
records. Queries are matched against a built-in compound catalog instantly,
then resolved through the PubChem APIs after a debounce delay; remote matches
are appended without duplicating catalog hits.

Subcommands: search runs a hybrid query, show looks up one compound by CID
(reading through a local SQLite store), and catalog inspects the local index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./chemsearch.yaml or ~/.config/chemsearch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("chemsearch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "chemsearch"))
		}
	}

	viper.SetEnvPrefix("CHEMSEARCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig assembles the search configuration from viper with flag
// overrides, then fills defaults.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: viper.GetString("search.user_agent"),
		},
		MaxResults:    viper.GetInt("search.max_results"),
		DebounceDelay: viper.GetDuration("search.debounce_delay"),
		MaxRetries:    viper.GetInt("search.max_retries"),
		CatalogFile:   viper.GetString("search.catalog_file"),
	}

	if v, err := cmd.Flags().GetInt("max-results"); err == nil && v > 0 {
		cfg.MaxResults = v
	}
	if v, err := cmd.Flags().GetDuration("debounce"); err == nil && v > 0 {
		cfg.DebounceDelay = v
	}
	if v, err := cmd.Flags().GetString("catalog"); err == nil && v != "" {
		cfg.CatalogFile = v
	}

	return cfg.WithDefaults()
}

// loadCatalog returns the configured catalog: a YAML file when one is set,
// otherwise the built-in table.
func loadCatalog(cfg types.SearchConfig) (*catalog.Catalog, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Builtin(), nil
}

// storePath returns the SQLite database path, preferring the --db flag.
func storePath(cmd *cobra.Command) string {
	if v, err := cmd.Flags().GetString("db"); err == nil && v != "" {
		return v
	}
	if v := viper.GetString("store.db_path"); v != "" {
		return v
	}
	return "chemsearch.db"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
