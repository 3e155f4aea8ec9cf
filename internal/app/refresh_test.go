package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/filterstore"
	"github.com/hberge/lobby/internal/hub"
	"github.com/hberge/lobby/internal/state"
)

// fakeFetcher records the queries it served and returns canned data.
type fakeFetcher struct {
	mu      sync.Mutex
	queries []criteria.Query
	err     error
}

func (f *fakeFetcher) FetchCatalog(_ context.Context, query criteria.Query) (hub.CatalogPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return hub.CatalogPage{}, f.err
	}
	return hub.CatalogPage{
		Items:      []hub.Game{{ID: "g-1", Title: "Dragon Hoard"}},
		Pagination: hub.Pagination{Page: query.Page, PageSize: query.PageSize, Total: 1, TotalPages: 1},
	}, nil
}

func (f *fakeFetcher) FetchProviders(context.Context) ([]hub.Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return []hub.Provider{{ID: "netent", Name: "NetEnt"}}, nil
}

func (f *fakeFetcher) served() []criteria.Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	dup := make([]criteria.Query, len(f.queries))
	copy(dup, f.queries)
	return dup
}

func TestRefresh_PopulatesSnapshotStore(t *testing.T) {
	store := &state.Store{}
	filters := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	fetcher := &fakeFetcher{}

	r := &Refresher{store: store, fetcher: fetcher, filters: filters, interval: time.Hour}
	r.Refresh(context.Background())

	snap := store.Snapshot()
	if !snap.HasPage || len(snap.Page.Items) != 1 {
		t.Fatalf("snapshot = %#v, want one item", snap.Page)
	}
	if len(snap.Providers) != 1 || snap.Providers[0].ID != "netent" {
		t.Fatalf("providers = %#v, want netent", snap.Providers)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestRefresh_UsesCurrentQuery(t *testing.T) {
	store := &state.Store{}
	filters := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	filters.SetSearch("dragon")
	filters.SetPage(2)
	fetcher := &fakeFetcher{}

	r := &Refresher{store: store, fetcher: fetcher, filters: filters, interval: time.Hour}
	r.Refresh(context.Background())

	served := fetcher.served()
	if len(served) != 1 {
		t.Fatalf("served %d queries, want 1", len(served))
	}
	if served[0].Search != "dragon" || served[0].Page != 2 {
		t.Fatalf("query = %#v, want search=dragon page=2", served[0])
	}
}

func TestRefresh_ErrorRecordsFailure(t *testing.T) {
	store := &state.Store{}
	filters := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	fetcher := &fakeFetcher{err: errors.New("hub down")}

	r := &Refresher{store: store, fetcher: fetcher, filters: filters, interval: time.Hour}
	r.Refresh(context.Background())
	r.Refresh(context.Background())

	snap := store.Snapshot()
	if snap.LastError == nil {
		t.Fatalf("expected recorded error")
	}
	if !snap.IsOffline() {
		t.Fatalf("expected offline after two failures")
	}
}

func TestStartRefresher_FilterChangeTriggersRefetch(t *testing.T) {
	store := &state.Store{}
	filters := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	fetcher := &fakeFetcher{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartRefresher(ctx, store, fetcher, filters, time.Hour)

	filters.SetHotOnly(true)

	deadline := time.After(2 * time.Second)
	for {
		served := fetcher.served()
		if len(served) >= 1 {
			last := served[len(served)-1]
			if !last.HotOnly {
				t.Fatalf("refetch query = %#v, want HotOnly", last)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("no refetch after filter change")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}
