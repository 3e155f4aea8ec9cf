// Package linksync keeps the filter store and the shareable link
// representation consistent in both directions without feeding back on
// itself. On hydration the link is the source of truth and is pushed into the
// store through its own mutation path; afterwards every committed store
// change is projected back out through the navigator's replace primitive.
package linksync

import (
	"net/url"
	"sync"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/filterstore"
)

// Navigator is the URL collaborator boundary: read the current query
// parameters and replace them in place. Replace must never create a new
// history entry; filter changes are not navigation.
type Navigator interface {
	Query() url.Values
	Replace(url.Values)
}

// Controller mediates the store/link pair. Construct with New, then call
// Hydrate once the store is ready; link writes only begin after the first
// hydration completes.
type Controller struct {
	store *filterstore.Store
	nav   Navigator

	mu        sync.Mutex
	hydrating bool
	hydrated  bool
}

// New wires a controller to the store's change feed. Nothing is written to
// the navigator until Hydrate has run.
func New(store *filterstore.Store, nav Navigator) *Controller {
	c := &Controller{store: store, nav: nav}
	store.Subscribe(c.onStoreChange)
	return c
}

// Hydrate decodes the navigator's current query and applies it to the store.
// A malformed or empty query still completes hydration: the store simply
// keeps its defaults. Safe to call again on a later external link change.
//
// The hydration window is tracked with a one-shot flag rather than by
// comparing URL strings; string comparison is fragile against key-ordering
// differences.
func (c *Controller) Hydrate() {
	c.mu.Lock()
	c.hydrating = true
	c.mu.Unlock()

	partial := criteria.Decode(c.nav.Query())
	if !partial.Empty() {
		c.store.ApplyPartial(partial)
	}

	c.mu.Lock()
	c.hydrating = false
	c.hydrated = true
	c.mu.Unlock()
}

// Hydrated reports whether the initial link decode has completed.
func (c *Controller) Hydrated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hydrated
}

// onStoreChange projects a committed store change back into the link.
// Changes caused by hydration itself are suppressed so the loop cannot close.
func (c *Controller) onStoreChange(cur criteria.Criteria) {
	c.mu.Lock()
	skip := c.hydrating || !c.hydrated
	c.mu.Unlock()
	if skip {
		return
	}
	c.nav.Replace(criteria.Encode(cur))
}
