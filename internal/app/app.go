package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/hberge/lobby/internal/config"
	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/favorites"
	"github.com/hberge/lobby/internal/filterstore"
	"github.com/hberge/lobby/internal/hub"
	"github.com/hberge/lobby/internal/linksync"
	"github.com/hberge/lobby/internal/prefs"
	"github.com/hberge/lobby/internal/state"
	"github.com/hberge/lobby/internal/ui"
)

// Options configure the lobby application.
type Options struct {
	ConfigPath    string
	PrefsPath     string // empty uses default ~/.config/lobby/prefs.toml
	FavoritesPath string // empty uses default ~/.config/lobby/favorites.toml
	Link          string // startup filter link; overrides the config file's link
	RefreshEvery  int    // seconds; zero uses default
}

// Run boots the lobby TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load lobby config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	client, err := hub.NewClient(cfg.APIBind)
	if err != nil {
		return fmt.Errorf("init hub client: %w", err)
	}

	favs, err := favorites.Open(opts.FavoritesPath)
	if err != nil {
		return fmt.Errorf("open favorites: %w", err)
	}

	// The store starts from defaults merged with persisted preferences; link
	// fields arrive through hydration so the store's own invariants apply.
	filters := filterstore.New(filterstore.Prefs{
		SortBy:   criteria.Sort(userPrefs.SortBy),
		PageSize: userPrefs.PageSize,
	}, criteria.Partial{})

	saver := &prefsSaver{path: opts.PrefsPath, saved: userPrefs}
	filters.Subscribe(saver.onCriteria)

	link := opts.Link
	if link == "" {
		link = cfg.Link
	}
	bar := NewLinkBar(link)
	sync := linksync.New(filters, bar)
	sync.Hydrate()

	snapshots := &state.Store{}

	interval := defaultRefreshInterval
	if cfg.RefreshSeconds > 0 {
		interval = time.Duration(cfg.RefreshSeconds) * time.Second
	}
	if opts.RefreshEvery > 0 {
		interval = time.Duration(opts.RefreshEvery) * time.Second
	}

	refresher := StartRefresher(ctx, snapshots, client, filters, interval)

	// Do initial refresh to populate the store before the UI starts.
	refresher.Refresh(ctx)

	// Pick up favorites written by another running instance.
	if watcher, err := favorites.Watch(favs, nil); err == nil {
		defer watcher.Stop()
	} else {
		log.Printf("favorites watcher unavailable: %v", err)
	}

	uiOpts := ui.Options{
		Context:       ctx,
		Filters:       filters,
		Snapshots:     snapshots,
		Favorites:     favs,
		LinkBar:       bar,
		ThemeName:     userPrefs.Theme,
		OnThemeChange: saver.onTheme,
	}
	return ui.Run(uiOpts)
}

// prefsSaver writes sort order, page size, and theme back to the prefs file
// whenever they change, so the next session starts from them.
type prefsSaver struct {
	mu    sync.Mutex
	path  string
	saved prefs.Prefs
}

func (p *prefsSaver) onCriteria(c criteria.Criteria) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saved.SortBy == string(c.SortBy) && p.saved.PageSize == c.PageSize {
		return
	}
	p.saved.SortBy = string(c.SortBy)
	p.saved.PageSize = c.PageSize
	p.writeLocked()
}

func (p *prefsSaver) onTheme(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.saved.Theme == name {
		return
	}
	p.saved.Theme = name
	p.writeLocked()
}

func (p *prefsSaver) writeLocked() {
	if err := prefs.Save(p.path, p.saved); err != nil {
		log.Printf("save prefs failed: %v", err)
	}
}
