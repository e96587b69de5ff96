// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chemsearch/internal/resolve"
	"github.com/pdiddy/chemsearch/internal/store"
	"github.com/pdiddy/chemsearch/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show <cid>",
	Short: "Show the properties of one compound by CID",
	Long: `Show prints the property record for a compound identifier. The local
SQLite store is consulted first; on a miss the record is fetched from
PubChem and saved, so subsequent lookups work offline.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cid, err := strconv.Atoi(args[0])
	if err != nil || cid <= 0 {
		return fmt.Errorf("invalid cid %q: expected a positive integer", args[0])
	}

	st, err := store.Open(storePath(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	refresh, _ := cmd.Flags().GetBool("refresh")
	if !refresh {
		if rec, ok, err := st.Get(ctx, cid); err != nil {
			return err
		} else if ok {
			return printRecord(cmd, rec)
		}
	}

	cfg := searchConfig(cmd)
	client := &resolve.Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
	records, err := client.Properties(ctx, []int{cid})
	if err != nil {
		return fmt.Errorf("fetching cid %d: %w", cid, err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no properties found for cid %d", cid)
	}

	if err := st.Save(ctx, records); err != nil {
		return err
	}
	return printRecord(cmd, records[0])
}

func printRecord(cmd *cobra.Command, rec types.CompoundRecord) error {
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return formatJSON(os.Stdout, []types.CompoundRecord{rec})
	}
	formatDetail(os.Stdout, rec)
	return nil
}

func init() {
	showCmd.Flags().Bool("refresh", false, "skip the local store and fetch fresh properties")
	showCmd.Flags().Bool("json", false, "output the record as JSON")
	showCmd.Flags().String("db", "", "SQLite database file (default chemsearch.db)")

	rootCmd.AddCommand(showCmd)
}
