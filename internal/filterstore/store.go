// Package filterstore owns the canonical catalog selection state. All
// mutation runs through the Store so the pagination-reset rule and set
// semantics hold no matter which input path (keystroke, hydration, key
// binding) proposed the change.
package filterstore

import (
	"sync"

	"github.com/hberge/lobby/internal/criteria"
)

// Listener observes committed state changes. Listeners run synchronously
// after the mutation, outside the store lock, in subscription order.
type Listener func(criteria.Criteria)

// Store is the stateful owner of the Criteria value. Construct one per
// screen with New; instances share nothing.
type Store struct {
	mu        sync.Mutex
	cur       criteria.Criteria
	query     *criteria.Query
	listeners []Listener
}

// New builds a Store from the three-way merge of built-in defaults, persisted
// preferences, and link-provided fields. Precedence: link > persisted >
// defaults. The link page number is honored verbatim.
func New(persisted Prefs, fromLink criteria.Partial) *Store {
	base := persisted.apply(criteria.Default())
	return &Store{cur: fromLink.Apply(base)}
}

// Prefs carries the user preferences the store retains across sessions and
// across Reset. Zero values mean "no preference recorded".
type Prefs struct {
	SortBy   criteria.Sort
	PageSize int
}

func (p Prefs) apply(c criteria.Criteria) criteria.Criteria {
	if criteria.ValidSort(p.SortBy) {
		c.SortBy = p.SortBy
	}
	if p.PageSize > 0 {
		c.PageSize = p.PageSize
	}
	return c
}

// Subscribe registers a listener for committed changes.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Current returns a copy of the criteria as of the last committed mutation.
func (s *Store) Current() criteria.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Clone()
}

// Query returns the derived fetch query. The returned pointer is stable
// while no visible field changes, so callers may use it as a refetch key
// without triggering spurious fetches.
func (s *Store) Query() *criteria.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.query == nil {
		q := criteria.BuildQuery(s.cur)
		s.query = &q
	}
	return s.query
}

// ActiveFilterCount reports how many non-default filters are applied.
func (s *Store) ActiveFilterCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.ActiveFilterCount()
}

// SetSearch replaces the committed free-text query.
func (s *Store) SetSearch(text string) {
	s.mutate(func(c *criteria.Criteria) { c.SearchText = text })
}

// SetScope replaces the search scope.
func (s *Store) SetScope(scope criteria.Scope) {
	if !criteria.ValidScope(scope) {
		return
	}
	s.mutate(func(c *criteria.Criteria) { c.SearchScope = scope })
}

// SetProviders replaces the provider selection wholesale.
func (s *Store) SetProviders(ids []string) {
	s.mutate(func(c *criteria.Criteria) { c.Providers = criteria.NormalizeSet(ids) })
}

// ToggleProvider adds or removes a single provider from the selection.
func (s *Store) ToggleProvider(id string) {
	s.mutate(func(c *criteria.Criteria) { c.Providers = toggle(c.Providers, id) })
}

// SetTypes replaces the category selection wholesale.
func (s *Store) SetTypes(tags []string) {
	s.mutate(func(c *criteria.Criteria) { c.Types = criteria.NormalizeSet(tags) })
}

// ToggleType adds or removes a single category tag.
func (s *Store) ToggleType(tag string) {
	s.mutate(func(c *criteria.Criteria) { c.Types = toggle(c.Types, tag) })
}

// SetTags replaces the tag selection wholesale.
func (s *Store) SetTags(tags []string) {
	s.mutate(func(c *criteria.Criteria) { c.Tags = criteria.NormalizeSet(tags) })
}

// ToggleTag adds or removes a single tag.
func (s *Store) ToggleTag(tag string) {
	s.mutate(func(c *criteria.Criteria) { c.Tags = toggle(c.Tags, tag) })
}

// SetSort replaces the sort order.
func (s *Store) SetSort(sort criteria.Sort) {
	if !criteria.ValidSort(sort) {
		return
	}
	s.mutate(func(c *criteria.Criteria) { c.SortBy = sort })
}

// SetFavoritesOnly toggles the favorites-only filter.
func (s *Store) SetFavoritesOnly(on bool) {
	s.mutate(func(c *criteria.Criteria) { c.FavoritesOnly = on })
}

// SetNewOnly toggles the new-releases filter.
func (s *Store) SetNewOnly(on bool) {
	s.mutate(func(c *criteria.Criteria) { c.NewOnly = on })
}

// SetHotOnly toggles the hot-games filter.
func (s *Store) SetHotOnly(on bool) {
	s.mutate(func(c *criteria.Criteria) { c.HotOnly = on })
}

// SetComingSoonOnly toggles the coming-soon filter.
func (s *Store) SetComingSoonOnly(on bool) {
	s.mutate(func(c *criteria.Criteria) { c.ComingSoonOnly = on })
}

// SetRTPRange sets the RTP bounds; pass criteria.RTPUnset to clear a bound.
func (s *Store) SetRTPRange(min, max float64) {
	s.mutate(func(c *criteria.Criteria) {
		c.RTPMin = min
		c.RTPMax = max
	})
}

// SetPage moves to another page without touching any filter.
func (s *Store) SetPage(page int) {
	s.mutatePage(func(c *criteria.Criteria) { c.Page = page })
}

// SetPageSize changes the page length. The current page is kept; the server
// clamps past-the-end pages in its pagination response.
func (s *Store) SetPageSize(size int) {
	s.mutatePage(func(c *criteria.Criteria) { c.PageSize = size })
}

// Reset restores every filter to its default while retaining the user's sort
// order and page size. Retention is a deliberate product decision: those two
// are preferences about presentation, not filters on content.
func (s *Store) Reset() {
	s.mutate(func(c *criteria.Criteria) {
		next := criteria.Default()
		next.SortBy = c.SortBy
		next.PageSize = c.PageSize
		*c = next
	})
}

// ApplyPartial is the hydration path: it overlays decoded link fields onto
// the current state in one committed step. The link's page number (or its
// absence, meaning page 1) is applied verbatim rather than re-derived.
func (s *Store) ApplyPartial(p criteria.Partial) {
	s.mutatePage(func(c *criteria.Criteria) {
		next := p.Apply(*c)
		if p.Page == nil {
			next.Page = criteria.DefaultPage
		}
		*c = next
	})
}

// mutate applies fn, then resets the page to 1 when a visible field changed.
// Mutations that change nothing commit nothing and notify nobody.
func (s *Store) mutate(fn func(*criteria.Criteria)) {
	s.commit(fn, true)
}

// mutatePage applies fn without the pagination reset; only SetPage,
// SetPageSize, and hydration may use it.
func (s *Store) mutatePage(fn func(*criteria.Criteria)) {
	s.commit(fn, false)
}

func (s *Store) commit(fn func(*criteria.Criteria), resetPage bool) {
	s.mu.Lock()
	next := s.cur.Clone()
	fn(&next)
	next = next.Clamp()
	if next.Equal(s.cur) {
		s.mu.Unlock()
		return
	}
	if resetPage {
		next.Page = criteria.DefaultPage
	}
	s.cur = next
	s.query = nil
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	snapshot := s.cur.Clone()
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func toggle(set []string, value string) []string {
	normalized := criteria.NormalizeSet([]string{value})
	if normalized == nil {
		return set
	}
	value = normalized[0]
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}
