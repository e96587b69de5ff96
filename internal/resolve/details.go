// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/chemsearch/pkg/types"
)

// Fetcher retrieves normalized property records for a set of CIDs in one
// batched remote call.
type Fetcher struct {
	Client *Client

	// Warn receives one-line diagnostics for failed batch calls.
	// Defaults to io.Discard.
	Warn io.Writer
}

func (f *Fetcher) warn() io.Writer {
	if f.Warn != nil {
		return f.Warn
	}
	return io.Discard
}

// FetchDetails returns property records for the given CIDs, in the batch
// response's order rather than the input order. It issues exactly one
// remote call. A failed call degrades to an empty result; FetchDetails
// never fails.
func (f *Fetcher) FetchDetails(ctx context.Context, cids []int) []types.CompoundRecord {
	if len(cids) == 0 {
		return nil
	}
	records, err := f.Client.Properties(ctx, cids)
	if err != nil {
		fmt.Fprintf(f.warn(), "warning: property fetch for %d cid(s) failed: %v\n", len(cids), err)
		return nil
	}
	return records
}
