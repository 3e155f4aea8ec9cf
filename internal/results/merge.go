// Package results combines freshly fetched catalog items with locally-held
// favorite state right before rendering. Favorite status is a client-owned
// fact that may be newer than the last fetch, so the local set always wins
// over whatever the server reported.
package results

import "github.com/hberge/lobby/internal/hub"

// Merge returns a new slice where each item's Favorite flag reflects the
// local set; the server's value for that field is overwritten either way.
// When favoritesOnly is set, the merged list is filtered down to favorites
// strictly after the overlay, so a just-favorited item already on screen
// survives toggling the filter on. Merge never materializes items absent
// from the fetched page; an unfetched favorite appears only after the next
// fetch returns it.
func Merge(items []hub.Game, favoriteIDs map[string]bool, favoritesOnly bool) []hub.Game {
	if len(items) == 0 {
		return nil
	}
	merged := make([]hub.Game, 0, len(items))
	for _, item := range items {
		item.Favorite = favoriteIDs[item.ID]
		if favoritesOnly && !item.Favorite {
			continue
		}
		merged = append(merged, item)
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}
