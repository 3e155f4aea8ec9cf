// Package criteria defines the canonical filter, sort, search, and pagination
// selection for the lobby catalog screen, plus the codec that translates it to
// and from a shareable query-string representation.
package criteria

import "strings"

// Scope narrows what free-text search matches against.
type Scope string

const (
	ScopeAll       Scope = "all"
	ScopeGames     Scope = "games"
	ScopeProviders Scope = "providers"
	ScopeTags      Scope = "tags"
)

// Sort identifies a server-side sort order for catalog results.
type Sort string

const (
	SortPopular Sort = "popular"
	SortNewest  Sort = "newest"
	SortTitleAZ Sort = "az"
	SortTitleZA Sort = "za"
	SortRating  Sort = "rating"
)

const (
	// RTPUnset marks an absent RTP bound. Criteria is a fully-defined value
	// type, so optional bounds carry a sentinel rather than a missing key.
	RTPUnset = -1

	DefaultPage     = 1
	DefaultPageSize = 20
)

// Criteria is the canonical filter/sort/pagination/search state. Provider,
// type, and tag selections have set semantics: unique entries, membership
// order preserved as given.
type Criteria struct {
	SearchText  string
	SearchScope Scope

	Providers []string
	Types     []string
	Tags      []string

	SortBy Sort

	FavoritesOnly  bool
	NewOnly        bool
	HotOnly        bool
	ComingSoonOnly bool

	RTPMin float64
	RTPMax float64

	Page     int
	PageSize int
}

// Default returns a Criteria with every field at its documented default.
func Default() Criteria {
	return Criteria{
		SearchScope: ScopeAll,
		SortBy:      SortPopular,
		RTPMin:      RTPUnset,
		RTPMax:      RTPUnset,
		Page:        DefaultPage,
		PageSize:    DefaultPageSize,
	}
}

// ValidScope reports whether s is a recognized search scope.
func ValidScope(s Scope) bool {
	switch s {
	case ScopeAll, ScopeGames, ScopeProviders, ScopeTags:
		return true
	}
	return false
}

// ValidSort reports whether s is a recognized sort order.
func ValidSort(s Sort) bool {
	switch s {
	case SortPopular, SortNewest, SortTitleAZ, SortTitleZA, SortRating:
		return true
	}
	return false
}

// Clamp normalizes out-of-range values in place of rejecting them; this state
// is reachable from user-editable links, so it is not an error.
func (c Criteria) Clamp() Criteria {
	if c.Page < 1 {
		c.Page = DefaultPage
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if !ValidScope(c.SearchScope) {
		c.SearchScope = ScopeAll
	}
	if !ValidSort(c.SortBy) {
		c.SortBy = SortPopular
	}
	if c.RTPMin < 0 {
		c.RTPMin = RTPUnset
	}
	if c.RTPMax < 0 {
		c.RTPMax = RTPUnset
	}
	c.Providers = NormalizeSet(c.Providers)
	c.Types = NormalizeSet(c.Types)
	c.Tags = NormalizeSet(c.Tags)
	return c
}

// ActiveFilterCount counts non-default fields: a non-empty search counts one,
// each selected provider/type/tag counts one, each enabled flag counts one,
// and a bounded RTP range counts one. Sort and pagination are not filters.
func (c Criteria) ActiveFilterCount() int {
	count := 0
	if strings.TrimSpace(c.SearchText) != "" {
		count++
	}
	count += len(c.Providers) + len(c.Types) + len(c.Tags)
	for _, on := range []bool{c.FavoritesOnly, c.NewOnly, c.HotOnly, c.ComingSoonOnly} {
		if on {
			count++
		}
	}
	if c.RTPMin >= 0 || c.RTPMax >= 0 {
		count++
	}
	return count
}

// Equal reports whether two Criteria describe the same selection. Set fields
// compare by membership, not order.
func (c Criteria) Equal(other Criteria) bool {
	return c.SearchText == other.SearchText &&
		c.SearchScope == other.SearchScope &&
		SameSet(c.Providers, other.Providers) &&
		SameSet(c.Types, other.Types) &&
		SameSet(c.Tags, other.Tags) &&
		c.SortBy == other.SortBy &&
		c.FavoritesOnly == other.FavoritesOnly &&
		c.NewOnly == other.NewOnly &&
		c.HotOnly == other.HotOnly &&
		c.ComingSoonOnly == other.ComingSoonOnly &&
		c.RTPMin == other.RTPMin &&
		c.RTPMax == other.RTPMax &&
		c.Page == other.Page &&
		c.PageSize == other.PageSize
}

// Clone returns a deep copy so callers can hold a Criteria without aliasing
// the owner's slices.
func (c Criteria) Clone() Criteria {
	c.Providers = cloneSlice(c.Providers)
	c.Types = cloneSlice(c.Types)
	c.Tags = cloneSlice(c.Tags)
	return c
}

// NormalizeSet trims entries, drops empties, and removes duplicates while
// keeping the first occurrence's position.
func NormalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SameSet reports membership equality regardless of order. Inputs are assumed
// deduplicated (NormalizeSet).
func SameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	members := make(map[string]struct{}, len(a))
	for _, v := range a {
		members[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := members[v]; !ok {
			return false
		}
	}
	return true
}

func cloneSlice(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}
