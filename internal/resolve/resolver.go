// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// maxSuggestions caps how many autocomplete suggestions are resolved to
// CIDs per query, regardless of the requested result limit.
const maxSuggestions = 20

// NameCID pairs a resolved compound name with its CID.
type NameCID struct {
	Name string
	CID  int
}

// lookupOutcome classifies a single name→CID lookup, so the
// swallow-and-continue policy is an explicit branch rather than an
// implicit error handler.
type lookupOutcome int

const (
	// lookupResolved means the name mapped to a CID.
	lookupResolved lookupOutcome = iota
	// lookupEmpty means the endpoint answered but knows no such name.
	lookupEmpty
	// lookupFailed means the lookup itself failed (transport or parse).
	lookupFailed
)

// Resolver resolves free-text queries to (name, CID) pairs. Queries of one
// or two characters resolve through the static letter table; longer
// queries go through the autocomplete endpoint. Individual lookup failures
// drop that name and continue; they are never fatal to the batch.
type Resolver struct {
	Client *Client

	// Warn receives one-line diagnostics for dropped names and failed
	// endpoints. Defaults to io.Discard.
	Warn io.Writer
}

func (r *Resolver) warn() io.Writer {
	if r.Warn != nil {
		return r.Warn
	}
	return io.Discard
}

// ResolveNames resolves the query to an ordered list of (name, CID) pairs,
// requesting at most limit suggestions. An empty result is terminal, not
// an error: failures inside either path degrade to fewer (or zero) pairs.
func (r *Resolver) ResolveNames(ctx context.Context, query string, limit int) []NameCID {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	// Short-query path. Only a missing letter entry (or a two-character
	// filter that eliminates every name) falls through to autocomplete;
	// a candidate list where no name resolves stays terminal.
	if utf8.RuneCountInString(q) <= 2 {
		if candidates := shortQueryCandidates(q); len(candidates) > 0 {
			return r.resolveEach(ctx, candidates)
		}
	}

	// Autocomplete path.
	names, err := r.Client.Suggest(ctx, q, limit)
	if err != nil {
		fmt.Fprintf(r.warn(), "warning: autocomplete for %q failed: %v\n", q, err)
		return nil
	}
	if len(names) == 0 {
		return nil
	}
	if len(names) > maxSuggestions {
		names = names[:maxSuggestions]
	}
	return r.resolveEach(ctx, names)
}

// resolveEach looks up each name individually and keeps the pairs that
// resolved. Lookups are non-atomic: one failure drops one name.
func (r *Resolver) resolveEach(ctx context.Context, names []string) []NameCID {
	var pairs []NameCID
	for _, name := range names {
		cid, outcome := r.lookupName(ctx, name)
		if outcome != lookupResolved {
			continue
		}
		pairs = append(pairs, NameCID{Name: name, CID: cid})
	}
	return pairs
}

// lookupName resolves one name to a CID and classifies the outcome.
func (r *Resolver) lookupName(ctx context.Context, name string) (int, lookupOutcome) {
	cid, err := r.Client.CIDForName(ctx, name)
	if err != nil {
		fmt.Fprintf(r.warn(), "warning: cid lookup for %q failed: %v\n", name, err)
		return 0, lookupFailed
	}
	if cid == 0 {
		return 0, lookupEmpty
	}
	return cid, lookupResolved
}
