// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"io"

	"github.com/pdiddy/chemsearch/pkg/types"
)

// Service composes the name resolver and the batch fetcher into the full
// query→records pipeline.
type Service struct {
	Resolver *Resolver
	Fetcher  *Fetcher
}

// NewService builds a resolution service on top of the given client.
// Warnings from both steps go to warn (io.Discard when nil).
func NewService(client *Client, warn io.Writer) *Service {
	return &Service{
		Resolver: &Resolver{Client: client, Warn: warn},
		Fetcher:  &Fetcher{Client: client, Warn: warn},
	}
}

// ResolveQuery resolves a free-text query into up to limit normalized
// compound records. The returned order is the batch fetch's response
// order, which may differ from the resolver's suggestion order. The error
// is reserved for the caller's boundary contract; every remote failure
// inside the pipeline degrades to fewer (or zero) records instead.
func (s *Service) ResolveQuery(ctx context.Context, query string, limit int) ([]types.CompoundRecord, error) {
	pairs := s.Resolver.ResolveNames(ctx, query, limit)
	if len(pairs) == 0 {
		return nil, nil
	}

	// Several names can resolve to the same CID; keep first-seen order
	// and the first name per CID.
	nameByCID := make(map[int]string, len(pairs))
	cids := make([]int, 0, len(pairs))
	for _, p := range pairs {
		if _, seen := nameByCID[p.CID]; seen {
			continue
		}
		nameByCID[p.CID] = p.Name
		cids = append(cids, p.CID)
	}

	records := s.Fetcher.FetchDetails(ctx, cids)
	for i := range records {
		if name, ok := nameByCID[records[i].CID]; ok {
			records[i].Name = name
		}
	}
	return records, nil
}
