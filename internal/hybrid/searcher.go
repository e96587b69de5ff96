// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hybrid merges instant local-catalog matches with debounced
// remote compound resolution for a live query string.
// See docs/ARCHITECTURE.md § Hybrid Search.
package hybrid

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pdiddy/chemsearch/internal/catalog"
	"github.com/pdiddy/chemsearch/pkg/types"
)

// Source tags which side(s) of the pipeline produced the currently
// published result set.
type Source string

const (
	SourceCache Source = "cache"
	SourceAPI   Source = "api"
	SourceBoth  Source = "both"
)

// QueryResolver is the remote half of the hybrid search: a free-text query
// resolved into up to limit compound records.
type QueryResolver interface {
	ResolveQuery(ctx context.Context, query string, limit int) ([]types.CompoundRecord, error)
}

// Snapshot is the published state for one query value. Snapshots are
// immutable: every query change or remote completion publishes a fresh
// one, never mutates an old one.
type Snapshot struct {
	// Query is the query string this snapshot was produced for.
	Query string `json:"query" yaml:"query"`

	// Results is the display set: catalog matches in catalog order,
	// followed by remote matches not already present in the catalog set.
	Results []types.CompoundRecord `json:"results" yaml:"results"`

	// CacheResults holds the catalog matches, capped at 10.
	CacheResults []types.CompoundRecord `json:"cache_results" yaml:"cache_results"`

	// APIResults holds the remote matches after dedup against CacheResults.
	APIResults []types.CompoundRecord `json:"api_results" yaml:"api_results"`

	// Loading is true while a remote resolution for this query is in flight.
	Loading bool `json:"loading" yaml:"loading"`

	// Source reports which side(s) produced Results.
	Source Source `json:"source" yaml:"source"`
}

// HasCacheResults reports whether any catalog match is published.
func (s Snapshot) HasCacheResults() bool { return len(s.CacheResults) > 0 }

// HasAPIResults reports whether any remote match is published.
func (s Snapshot) HasAPIResults() bool { return len(s.APIResults) > 0 }

// Options configures a Searcher. Zero fields take defaults.
type Options struct {
	// Scheduler drives the debounce timer; defaults to the wall clock.
	Scheduler Scheduler

	// Debounce is the quiet period before the remote call (default 200ms).
	Debounce time.Duration

	// MaxResults is the remote result cap (default 50).
	MaxResults int

	// Warn receives one-line diagnostics for swallowed remote failures.
	// Defaults to io.Discard.
	Warn io.Writer

	// OnUpdate, when set, is invoked with every published snapshot, in
	// publish order. It runs with the searcher's lock held and must not
	// call back into the Searcher.
	OnUpdate func(Snapshot)
}

// Searcher orchestrates hybrid search for a live query string. On every
// query change it publishes catalog matches synchronously, then resolves
// the query remotely after the debounce delay, discarding any result that
// arrives for a superseded query.
type Searcher struct {
	catalog  *catalog.Catalog
	resolver QueryResolver
	sched    Scheduler
	debounce time.Duration
	limit    int
	warn     io.Writer
	onUpdate func(Snapshot)

	mu      sync.Mutex
	gen     uint64 // monotonic query generation; stale async results are discarded
	pending TimerHandle
	snap    Snapshot
	closed  bool
}

// New builds a Searcher over the given catalog and remote resolver.
func New(cat *catalog.Catalog, resolver QueryResolver, opts Options) *Searcher {
	s := &Searcher{
		catalog:  cat,
		resolver: resolver,
		sched:    opts.Scheduler,
		debounce: opts.Debounce,
		limit:    opts.MaxResults,
		warn:     opts.Warn,
		onUpdate: opts.OnUpdate,
		snap:     Snapshot{Source: SourceCache},
	}
	if s.sched == nil {
		s.sched = NewScheduler()
	}
	if s.debounce <= 0 {
		s.debounce = types.DefaultDebounceDelay
	}
	if s.limit <= 0 {
		s.limit = types.DefaultMaxResults
	}
	if s.warn == nil {
		s.warn = io.Discard
	}
	return s
}

// SetQuery reacts to a query change: it cancels any pending debounce
// timer, publishes the catalog matches immediately, and schedules remote
// resolution after the debounce delay. An empty query clears all results
// without any remote call. ctx is captured for the remote call issued on
// behalf of this query value.
func (s *Searcher) SetQuery(ctx context.Context, query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.gen++
	gen := s.gen
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}

	if query == "" {
		s.publish(Snapshot{Source: SourceCache})
		return
	}

	cached := s.catalog.Search(query)
	s.publish(Snapshot{
		Query:        query,
		Results:      cached,
		CacheResults: cached,
		Source:       SourceCache,
	})

	s.pending = s.sched.AfterFunc(s.debounce, func() {
		s.resolveRemote(ctx, gen, query, cached)
	})
}

// Snapshot returns the currently published state.
func (s *Searcher) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Close cancels any pending debounce timer and detaches in-flight remote
// calls; their results will be discarded.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.gen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// resolveRemote runs after the debounce fires: it marks the snapshot
// loading, performs the remote resolution, and applies the outcome only if
// the query generation is still current at apply time. cached is the
// catalog set captured when the call was issued; remote records whose CID
// already appears there are dropped.
func (s *Searcher) resolveRemote(ctx context.Context, gen uint64, query string, cached []types.CompoundRecord) {
	s.mu.Lock()
	if gen != s.gen || s.closed {
		s.mu.Unlock()
		return
	}
	loading := s.snap
	loading.Loading = true
	s.publish(loading)
	s.mu.Unlock()

	records, err := s.resolver.ResolveQuery(ctx, query, s.limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.closed {
		// Superseded while in flight; the newer query owns the state now.
		return
	}

	if err != nil {
		fmt.Fprintf(s.warn, "warning: remote resolution for %q failed: %v\n", query, err)
		done := s.snap
		done.Loading = false
		s.publish(done)
		return
	}

	inCache := make(map[int]bool, len(cached))
	for _, r := range cached {
		inCache[r.CID] = true
	}
	var remote []types.CompoundRecord
	for _, r := range records {
		if inCache[r.CID] {
			continue
		}
		remote = append(remote, r)
	}

	results := make([]types.CompoundRecord, 0, len(cached)+len(remote))
	results = append(results, cached...)
	results = append(results, remote...)

	source := SourceAPI
	if len(cached) > 0 {
		source = SourceBoth
	}
	s.publish(Snapshot{
		Query:        query,
		Results:      results,
		CacheResults: cached,
		APIResults:   remote,
		Source:       source,
	})
}

// publish replaces the current snapshot and fires OnUpdate. Callers hold
// the lock.
func (s *Searcher) publish(snap Snapshot) {
	s.snap = snap
	if s.onUpdate != nil {
		s.onUpdate(snap)
	}
}
