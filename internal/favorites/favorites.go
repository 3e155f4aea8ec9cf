// Package favorites keeps the player's favorite game IDs.
// Favorites are stored in ~/.config/lobby/favorites.toml so they survive
// restarts and can be shared between running instances.
package favorites

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

const defaultFavoritesPath = "~/.config/lobby/favorites.toml"

// DefaultPath returns the default favorites file path.
func DefaultPath() string {
	return defaultFavoritesPath
}

type favoritesFile struct {
	IDs []string `toml:"ids"`
}

// Store owns the favorite-ID set. The merge layer reads snapshots through
// IDs; nothing outside the store mutates the set.
type Store struct {
	mu   sync.RWMutex
	ids  map[string]bool
	path string
}

// Open loads the favorites file at path (empty uses the default), falling
// back to an empty set when the file is missing or unreadable.
func Open(path string) (*Store, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve favorites path: %w", err)
	}
	s := &Store{ids: make(map[string]bool), path: resolved}
	s.loadFromDisk()
	return s, nil
}

// IDs returns a snapshot of the favorite set. Callers own the returned map.
func (s *Store) IDs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		snapshot[id] = true
	}
	return snapshot
}

// IsFavorite reports whether a single game is favorited.
func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[id]
}

// Count returns the number of favorited games.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Toggle flips a game's favorite status and persists the set. The in-memory
// flip sticks even when the write fails; the UI stays optimistic and the
// error is the caller's to surface.
func (s *Store) Toggle(id string) (favorited bool, err error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, fmt.Errorf("game id required")
	}
	s.mu.Lock()
	if s.ids[id] {
		delete(s.ids, id)
	} else {
		s.ids[id] = true
		favorited = true
	}
	ids := s.sortedLocked()
	path := s.path
	s.mu.Unlock()

	if err := save(path, ids); err != nil {
		return favorited, fmt.Errorf("persist favorites: %w", err)
	}
	return favorited, nil
}

// Reload re-reads the favorites file, replacing the in-memory set. Used when
// another instance wrote the file.
func (s *Store) Reload() {
	s.loadFromDisk()
}

// Path returns the resolved favorites file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) loadFromDisk() {
	loaded := make(map[string]bool)

	file, err := os.Open(s.path)
	if err == nil {
		defer func() { _ = file.Close() }()
		bytes, err := io.ReadAll(file)
		if err == nil {
			var raw favoritesFile
			if toml.Unmarshal(bytes, &raw) == nil {
				for _, id := range raw.IDs {
					id = strings.TrimSpace(id)
					if id != "" {
						loaded[id] = true
					}
				}
			}
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		// Unreadable file degrades to an empty set rather than failing.
		loaded = make(map[string]bool)
	}

	s.mu.Lock()
	s.ids = loaded
	s.mu.Unlock()
}

func (s *Store) sortedLocked() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func save(path string, ids []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create favorites dir: %w", err)
	}
	bytes, err := toml.Marshal(favoritesFile{IDs: ids})
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write favorites: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultFavoritesPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
