// Package app provides the orchestration layer for the lobby application.
//
// # Overview
//
// This package wires together configuration, preferences, the hub client, the
// filter store, link synchronization, the favorites overlay, and the UI to
// create the complete lobby TUI experience. It serves as the composition root
// where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load lobby configuration from ~/.config/lobby/config.toml
//  2. Load user preferences (theme, sort order, page size)
//  3. Initialize HTTP client for the hub catalog API
//  4. Open the favorites store and start its file watcher
//  5. Create the filter store seeded from preferences, then hydrate it from
//     the startup link through the sync controller
//  6. Launch the background refresher goroutine
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Main Run function and preference persistence
//   - navigator.go: LinkBar, the shareable-link side of link synchronization
//   - refresh.go: Background goroutine that refetches the catalog whenever
//     the filter criteria change, and periodically otherwise
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read lobby config
//	       ├─────> prefs.Load()        Read user preferences
//	       ├─────> hub.NewClient()     Create HTTP client
//	       ├─────> favorites.Open()    Local favorites overlay
//	       ├─────> filterstore.New()   Canonical criteria state
//	       ├─────> linksync.New()      Hydrate from the startup link
//	       ├─────> StartRefresher()    Launch background fetches
//	       └─────> ui.Run()            Start TUI (blocks)
//
//	Background Refresh Loop:
//	┌─────────────────────────────────────────┐
//	│ StartRefresher() goroutine              │
//	│  filter change ──> trigger              │
//	│  ├─> FetchCatalog(query)                │
//	│  ├─> FetchProviders()                   │
//	│  └─> store.Update()  (atomic)           │
//	│      └─> UI reads store.Snapshot()      │
//	└─────────────────────────────────────────┘
//
// # Refresh Behavior
//
// The refresher reacts to filter store changes immediately and refetches on a
// fixed cadence otherwise (default: 60 seconds). Consecutive failures back
// off exponentially, capped at 30 seconds, and the last good page is kept so
// the UI degrades to stale data rather than a blank screen.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration or preferences file present but invalid
//   - Hub client initialization failure
//
// Recoverable errors (logged, refreshing continues):
//   - Periodic catalog or provider fetch failures
//   - Preference write failures
//   - Favorites watcher unavailability
//
// # Configuration
//
// The Options struct allows callers to customize:
//
//   - ConfigPath: Path to lobby config.toml (default: ~/.config/lobby/config.toml)
//   - Link: Startup filter link, overriding the config file's link
//   - RefreshEvery: Refresh interval in seconds (default: 60 seconds)
package app
