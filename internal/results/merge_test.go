package results

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hberge/lobby/internal/hub"
)

func TestLocalFavoriteOverridesServerValue(t *testing.T) {
	items := []hub.Game{
		{ID: "a", Favorite: false},
		{ID: "b", Favorite: true},
	}
	merged := Merge(items, map[string]bool{"a": true}, false)

	require.Len(t, merged, 2)
	require.True(t, merged[0].Favorite, "local set says favorite, server said not")
	require.False(t, merged[1].Favorite, "server said favorite, local set says not")
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	items := []hub.Game{{ID: "a"}}
	_ = Merge(items, map[string]bool{"a": true}, false)
	require.False(t, items[0].Favorite)
}

func TestFavoritesOnlyFiltersAfterOverlay(t *testing.T) {
	items := []hub.Game{
		{ID: "a", Favorite: false}, // favorited locally after the fetch
		{ID: "b", Favorite: true},  // unfavorited locally after the fetch
		{ID: "c", Favorite: false},
	}
	merged := Merge(items, map[string]bool{"a": true}, true)

	require.Len(t, merged, 1)
	require.Equal(t, "a", merged[0].ID,
		"a just-favorited item already fetched must survive the filter")
}

func TestMergeCannotMaterializeUnfetchedFavorites(t *testing.T) {
	items := []hub.Game{{ID: "a"}}
	merged := Merge(items, map[string]bool{"a": true, "not-fetched": true}, true)

	require.Len(t, merged, 1)
	require.Equal(t, "a", merged[0].ID,
		"a favorite missing from the fetched page appears only after the next fetch")
}

func TestMergeEmptyInputs(t *testing.T) {
	require.Nil(t, Merge(nil, map[string]bool{"a": true}, false))
	require.Nil(t, Merge([]hub.Game{{ID: "a"}}, nil, true))
	merged := Merge([]hub.Game{{ID: "a", Favorite: true}}, nil, false)
	require.Len(t, merged, 1)
	require.False(t, merged[0].Favorite, "nil favorites set clears the server flag")
}
