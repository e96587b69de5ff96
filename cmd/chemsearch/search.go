// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chemsearch/internal/hybrid"
	"github.com/pdiddy/chemsearch/internal/resolve"
	"github.com/pdiddy/chemsearch/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search compounds by partial name or formula",
	Long: `Search matches the query against the local compound catalog first,
then resolves it through the PubChem autocomplete and property APIs after
a debounce delay. Remote matches already present in the catalog set are
dropped; the final listing is catalog matches followed by new remote
matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	cfg := searchConfig(cmd)

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	client := &resolve.Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
	service := resolve.NewService(client, os.Stderr)

	// The searcher publishes twice after the debounce fires: once entering
	// the loading state and once settling. The second of those is final.
	done := make(chan hybrid.Snapshot, 1)
	sawLoading := false
	searcher := hybrid.New(cat, service, hybrid.Options{
		Debounce:   cfg.DebounceDelay,
		MaxResults: cfg.MaxResults,
		Warn:       os.Stderr,
		OnUpdate: func(snap hybrid.Snapshot) {
			if snap.Loading {
				sawLoading = true
				return
			}
			if sawLoading {
				select {
				case done <- snap:
				default:
				}
			}
		},
	})
	defer searcher.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	searcher.SetQuery(ctx, query)

	if first := searcher.Snapshot(); first.HasCacheResults() {
		fmt.Fprintf(os.Stderr, "%d catalog match(es), resolving remotely...\n", len(first.CacheResults))
	}

	var snap hybrid.Snapshot
	select {
	case snap = <-done:
	case <-time.After(cfg.DebounceDelay + cfg.Timeout + 5*time.Second):
		// Remote side never settled; fall back to whatever is published.
		snap = searcher.Snapshot()
	case <-ctx.Done():
		return ctx.Err()
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := hybrid.WriteResultFile(outPath, snap, cfg); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", outPath)
	}

	if save, _ := cmd.Flags().GetBool("save"); save && snap.HasAPIResults() {
		st, err := store.Open(storePath(cmd))
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Save(ctx, snap.APIResults); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d compound(s) to %s\n", len(snap.APIResults), storePath(cmd))
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return formatJSON(os.Stdout, snap.Results)
	}
	formatTable(os.Stdout, snap)
	return nil
}

func init() {
	searchCmd.Flags().Int("max-results", 0, "maximum number of remote results to request")
	searchCmd.Flags().Duration("debounce", 0, "debounce delay before the remote call")
	searchCmd.Flags().String("catalog", "", "YAML catalog file replacing the built-in catalog")
	searchCmd.Flags().String("out", "", "write query and results to a YAML file")
	searchCmd.Flags().Bool("save", false, "persist remote matches to the local compound store")
	searchCmd.Flags().String("db", "", "SQLite database file for --save (default chemsearch.db)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
