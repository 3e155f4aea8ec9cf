// Package state provides thread-safe state management for fetched catalog data.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the last
// fetched catalog page and provider list between the background refresher and
// the UI. It is the coordination point where fetch results meet rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Refresher):           Consumer (UI):
//	┌──────────────────┐           ┌─────────────────┐
//	│ FetchCatalog()   │           │                 │
//	│ FetchProviders() │           │                 │
//	│       ↓          │           │                 │
//	│ store.Update()   │──────────→│ store.Snapshot()│
//	│       ↓          │  (mutex)  │       ↓         │
//	│   repeat...      │           │   render UI     │
//	└──────────────────┘           └─────────────────┘
//
// # Update Semantics
//
// On success the snapshot is replaced wholesale. On error the previous data
// is kept and only the error metadata changes, so the UI always has the most
// recent successful page to display while being told the hub is unreachable:
//
//	store.Update(&page, providers, nil) // replace data, clear error
//	store.Update(nil, nil, err)         // keep data, record failure
//
// ConsecutiveFailures drives Snapshot.IsOffline, which trips after two failed
// fetches in a row.
//
// # Defensive Copying
//
// Both Update and Snapshot deep-copy item and provider slices, so neither the
// refresher nor the UI can mutate data the other is holding. The cost is a
// page of small structs and is negligible next to the network fetch.
//
// The zero-value Store is ready to use; no construction required.
package state
