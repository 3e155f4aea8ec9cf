package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/prefs"
)

func TestPrefsSaver_WritesOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	saver := &prefsSaver{path: path, saved: prefs.Prefs{Theme: "Dracula", SortBy: "popular", PageSize: 20}}

	c := criteria.Default()
	c.SortBy = criteria.SortRating
	c.PageSize = 50
	saver.onCriteria(c)

	loaded, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.SortBy != "rating" || loaded.PageSize != 50 {
		t.Fatalf("persisted prefs = %+v, want rating/50", loaded)
	}
}

func TestPrefsSaver_NoWriteWhenUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	saver := &prefsSaver{path: path, saved: prefs.Prefs{Theme: "Dracula", SortBy: "popular", PageSize: 20}}

	saver.onCriteria(criteria.Default())
	saver.onTheme("Dracula")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("prefs file written despite no change (stat err = %v)", err)
	}
}

func TestPrefsSaver_PersistsTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	saver := &prefsSaver{path: path, saved: prefs.Prefs{Theme: "Dracula", SortBy: "popular", PageSize: 20}}

	saver.onTheme("Slate")

	loaded, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Theme != "Slate" {
		t.Fatalf("persisted theme = %q, want Slate", loaded.Theme)
	}
}
