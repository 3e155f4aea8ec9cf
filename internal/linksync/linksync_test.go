package linksync

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hberge/lobby/internal/criteria"
	"github.com/hberge/lobby/internal/filterstore"
)

// fakeNavigator records replace calls and serves a canned query.
type fakeNavigator struct {
	query    url.Values
	replaced []url.Values
}

func (n *fakeNavigator) Query() url.Values {
	if n.query == nil {
		return url.Values{}
	}
	return n.query
}

func (n *fakeNavigator) Replace(values url.Values) {
	n.replaced = append(n.replaced, values)
}

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func TestHydrateAppliesLinkToStore(t *testing.T) {
	store := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	nav := &fakeNavigator{query: mustParseQuery(t, "providers=netent,evolution&hot=true&page=3")}

	ctl := New(store, nav)
	ctl.Hydrate()

	cur := store.Current()
	require.Equal(t, []string{"netent", "evolution"}, cur.Providers)
	require.True(t, cur.HotOnly)
	require.Equal(t, 3, cur.Page, "the link page applies verbatim")
	require.True(t, ctl.Hydrated())
}

func TestHydrationDoesNotWriteBack(t *testing.T) {
	store := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	nav := &fakeNavigator{query: mustParseQuery(t, "q=dragon&sort=newest")}

	New(store, nav).Hydrate()
	require.Empty(t, nav.replaced, "hydration must not trigger a link write")
}

func TestStoreChangesWriteAfterHydration(t *testing.T) {
	store := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	nav := &fakeNavigator{}

	New(store, nav).Hydrate()
	store.SetSearch("dead or alive")
	store.SetHotOnly(true)

	require.Len(t, nav.replaced, 2, "one replace per committed change, never a push")
	last := nav.replaced[1]
	require.Equal(t, "dead or alive", last.Get(criteria.ParamSearch))
	require.Equal(t, "true", last.Get(criteria.ParamHot))
}

func TestStoreChangesBeforeHydrationAreNotWritten(t *testing.T) {
	store := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	nav := &fakeNavigator{}
	ctl := New(store, nav)

	store.SetSearch("early")
	require.Empty(t, nav.replaced)

	ctl.Hydrate()
	store.SetSearch("late")
	require.Len(t, nav.replaced, 1)
}

func TestGarbageLinkCompletesHydrationWithDefaults(t *testing.T) {
	store := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	nav := &fakeNavigator{query: mustParseQuery(t, "sort=chaotic&page=banana&utm_source=spam")}

	ctl := New(store, nav)
	ctl.Hydrate()

	require.True(t, ctl.Hydrated())
	require.True(t, store.Current().Equal(criteria.Default()))
	require.Empty(t, nav.replaced)
}

func TestRehydrateOnExternalLinkChange(t *testing.T) {
	store := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	nav := &fakeNavigator{query: mustParseQuery(t, "q=first")}
	ctl := New(store, nav)
	ctl.Hydrate()

	nav.query = mustParseQuery(t, "q=second&page=2")
	ctl.Hydrate()

	cur := store.Current()
	require.Equal(t, "second", cur.SearchText)
	require.Equal(t, 2, cur.Page)
	require.Empty(t, nav.replaced, "re-hydration is still not a write")
}

func TestRoundTripThroughLink(t *testing.T) {
	// State written out by one instance hydrates an identical state in a
	// fresh one: the shareable-link contract.
	first := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	nav := &fakeNavigator{}
	New(first, nav).Hydrate()

	first.SetProviders([]string{"netent"})
	first.SetSort(criteria.SortRating)
	first.SetPage(4)

	shared := nav.replaced[len(nav.replaced)-1]
	second := filterstore.New(filterstore.Prefs{}, criteria.Partial{})
	New(second, &fakeNavigator{query: shared}).Hydrate()

	require.True(t, first.Current().Equal(second.Current()))
}
