package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/hberge/lobby/internal/hub"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	page := &hub.CatalogPage{
		Items:      []hub.Game{{ID: "g-1"}, {ID: "g-2"}},
		Pagination: hub.Pagination{Page: 1, PageSize: 20, Total: 2, TotalPages: 1},
	}
	providers := []hub.Provider{{ID: "netent"}}

	before := time.Now()
	s.Update(page, providers, nil)

	snap := s.Snapshot()
	if !snap.HasPage || len(snap.Page.Items) != 2 {
		t.Fatalf("snapshot page = %#v, want 2 items HasPage=true", snap.Page)
	}
	if len(snap.Providers) != 1 || snap.Providers[0].ID != "netent" {
		t.Fatalf("snapshot providers = %#v, want netent", snap.Providers)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Page.Items[0].ID = "mutated"
	snap2 := s.Snapshot()
	if snap2.Page.Items[0].ID != "g-1" {
		t.Fatalf("Snapshot should clone items; got id %s want g-1", snap2.Page.Items[0].ID)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&hub.CatalogPage{Items: []hub.Game{{ID: "g-1"}}}, nil, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, nil, origErr)

	snap := s.Snapshot()
	if snap.HasPage != prev.HasPage || len(snap.Page.Items) != 1 || snap.Page.Items[0].ID != "g-1" {
		t.Fatalf("page changed on error: got %#v want %#v", snap.Page, prev.Page)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	// Initially zero failures
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	// First failure
	s.Update(nil, nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	// Second failure - now offline
	s.Update(nil, nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	// Success resets counter
	s.Update(&hub.CatalogPage{}, nil, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
}
