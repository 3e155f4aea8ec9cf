package app

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/filterstore"
	"github.com/hberge/lobby/internal/hub"
	"github.com/hberge/lobby/internal/state"
)

const (
	defaultRefreshInterval = 60 * time.Second
	maxBackoff             = 30 * time.Second
)

// Refresher keeps the snapshot store in sync with the hub. It refetches
// immediately whenever the filter store's derived query changes, and on a
// fixed cadence otherwise. It never retries a failed fetch on its own beyond
// the next scheduled cycle; the query is memoized by the filter store, so a
// retry reissues identical criteria.
type Refresher struct {
	store    *state.Store
	fetcher  hub.CatalogFetcher
	filters  *filterstore.Store
	interval time.Duration
	trigger  chan struct{}
}

// StartRefresher launches the background refresh loop and returns
// immediately. The loop exits when ctx is cancelled.
func StartRefresher(ctx context.Context, store *state.Store, fetcher hub.CatalogFetcher, filters *filterstore.Store, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	r := &Refresher{
		store:    store,
		fetcher:  fetcher,
		filters:  filters,
		interval: interval,
		trigger:  make(chan struct{}, 1),
	}

	filters.Subscribe(func(criteria.Criteria) { r.kick() })

	go r.loop(ctx)
	return r
}

// kick requests a refresh without blocking the mutation that caused it.
func (r *Refresher) kick() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

func (r *Refresher) loop(ctx context.Context) {
	for {
		wait := r.interval
		if failures := r.store.Snapshot().ConsecutiveFailures; failures > 0 {
			wait = calculateBackoff(failures, r.interval)
		}
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-r.trigger:
			timer.Stop()
		case <-timer.C:
		}
		r.Refresh(ctx)
	}
}

// Refresh performs one fetch cycle with the filter store's current query.
func (r *Refresher) Refresh(ctx context.Context) {
	query := *r.filters.Query()

	var page hub.CatalogPage
	var providers []hub.Provider

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		page, err = r.fetcher.FetchCatalog(groupCtx, query)
		return err
	})
	group.Go(func() error {
		var err error
		providers, err = r.fetcher.FetchProviders(groupCtx)
		return err
	})

	if err := group.Wait(); err != nil {
		r.store.Update(nil, nil, err)
		log.Printf("catalog refresh failed: %v", err)
		return
	}
	r.store.Update(&page, providers, nil)
}

// calculateBackoff doubles the wait per consecutive failure, capped at
// maxBackoff, so an unreachable hub is not hammered on the refresh cadence.
func calculateBackoff(failures int, baseInterval time.Duration) time.Duration {
	if failures <= 0 {
		return baseInterval
	}
	backoff := baseInterval
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
