// Package state holds the session's view state: the current snapshot of the
// raw collections, the active section, the search query and the
// Loading/Ready/Refreshing lifecycle. It is the single writer of all of them.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/miloosorio186/dashboard-tech/internal/config"
	"github.com/miloosorio186/dashboard-tech/internal/gateway"
	"github.com/miloosorio186/dashboard-tech/internal/metrics"
)

// Store is the explicit state holder for one dashboard session. Constructed
// once in main and handed to the API layer; there is no package-level state.
type Store struct {
	gw         gateway.Gateway
	metrics    *metrics.Collector
	log        zerolog.Logger
	minVisible time.Duration

	mu       sync.RWMutex
	phase    Phase
	section  Section
	query    string
	snapshot *Snapshot
}

// NewStore creates a Store in the Loading phase with the overview section
// preselected for when data arrives.
func NewStore(gw gateway.Gateway, cfg *config.StateConfig, collector *metrics.Collector, log zerolog.Logger) *Store {
	return &Store{
		gw:         gw,
		metrics:    collector,
		log:        log.With().Str("component", "state").Logger(),
		minVisible: cfg.RefreshMinVisible,
		phase:      PhaseLoading,
		section:    SectionOverview,
	}
}

// Load performs the initial fetch join and moves the store from Loading to
// Ready. It blocks until all four fetches have settled; individual failures
// degrade to empty collections and never block the transition. Calling Load
// again after it has completed is a no-op.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	if s.phase != PhaseLoading {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	snap := fetchSnapshot(ctx, s.gw)

	s.mu.Lock()
	s.snapshot = snap
	s.phase = PhaseReady
	s.mu.Unlock()

	s.metrics.Refreshes.Inc()
	s.log.Info().
		Str("snapshot_id", snap.ID).
		Int("users", len(snap.Users)).
		Int("products", len(snap.Products)).
		Int("carts", len(snap.Carts)).
		Int("posts", len(snap.Posts)).
		Int("failures", len(snap.Failures)).
		Msg("Initial load completed")
}

// Refresh re-fetches all collections and atomically replaces the snapshot.
// Valid only in Ready: during Loading it returns ErrNotReady, and while a
// refresh is already in flight it is a no-op, so at most one refresh runs at
// a time. A refresh always runs to completion; there is no cancellation.
//
// The Refreshing phase is held for at least the configured minimum visible
// duration before the swap lands, so fast rounds still register upstream.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	switch s.phase {
	case PhaseLoading:
		s.mu.Unlock()
		return ErrNotReady
	case PhaseRefreshing:
		s.mu.Unlock()
		s.log.Debug().Msg("Refresh already in flight, ignoring")
		return nil
	}
	s.phase = PhaseRefreshing
	s.mu.Unlock()

	started := time.Now()
	snap := fetchSnapshot(ctx, s.gw)

	if remaining := s.minVisible - time.Since(started); remaining > 0 {
		time.Sleep(remaining)
	}

	s.mu.Lock()
	s.snapshot = snap
	s.phase = PhaseReady
	s.mu.Unlock()

	s.metrics.Refreshes.Inc()
	s.log.Info().
		Str("snapshot_id", snap.ID).
		Dur("duration", time.Since(started)).
		Int("failures", len(snap.Failures)).
		Msg("Refresh completed")
	return nil
}

// SelectSection changes the active section. Unknown identifiers are rejected
// and selection is not possible before the initial load has settled.
func (s *Store) SelectSection(id string) error {
	section, err := ParseSection(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseLoading {
		return ErrNotReady
	}
	s.section = section
	return nil
}

// SetSearchQuery replaces the current search query. Not valid while Loading.
func (s *Store) SetSearchQuery(query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseLoading {
		return ErrNotReady
	}
	s.query = query
	return nil
}

// Phase returns the current lifecycle phase.
func (s *Store) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// ActiveSection returns the currently selected section.
func (s *Store) ActiveSection() Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.section
}

// SearchQuery returns the current search query.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// RefreshInProgress reports whether a refresh is currently in flight.
func (s *Store) RefreshInProgress() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase == PhaseRefreshing
}

// Snapshot returns the current snapshot, or nil while Loading. The snapshot
// is immutable; callers may hold it as long as they like.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
