package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/hberge/lobby/internal/hub"
)

// Snapshot represents the latest fetched catalog data available to the UI.
type Snapshot struct {
	Page                hub.CatalogPage
	HasPage             bool
	Providers           []hub.Provider
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive fetch failures
}

// IsOffline returns true when the hub has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data
// is kept but the error is recorded for visibility, so the UI keeps showing
// the last good page while offline.
func (s *Store) Update(page *hub.CatalogPage, providers []hub.Provider, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if page != nil {
		s.snapshot.Page = clonePage(*page)
		s.snapshot.HasPage = true
	}
	if providers != nil {
		s.snapshot.Providers = cloneProviders(providers)
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Page = clonePage(s.snapshot.Page)
	snap.Providers = cloneProviders(s.snapshot.Providers)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePage(page hub.CatalogPage) hub.CatalogPage {
	if len(page.Items) > 0 {
		items := make([]hub.Game, len(page.Items))
		copy(items, page.Items)
		page.Items = items
	}
	if len(page.Meta.Tags) > 0 {
		tags := make([]string, len(page.Meta.Tags))
		copy(tags, page.Meta.Tags)
		page.Meta.Tags = tags
	}
	return page
}

func cloneProviders(providers []hub.Provider) []hub.Provider {
	if len(providers) == 0 {
		return nil
	}
	dup := make([]hub.Provider, len(providers))
	copy(dup, providers)
	return dup
}
