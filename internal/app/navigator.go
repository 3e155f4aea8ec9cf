package app

import (
	"net/url"
	"strings"
	"sync"
)

// LinkBar is lobby's navigation collaborator: a terminal app has no address
// bar, so the "URL" is a shareable query string shown in the footer and
// accepted at startup via --link or the config file. It only supports
// replacement; filter changes never accumulate history.
type LinkBar struct {
	mu     sync.Mutex
	values url.Values
}

// NewLinkBar seeds the bar from a raw link such as
// "?providers=netent&hot=true". A malformed link degrades to an empty query.
func NewLinkBar(raw string) *LinkBar {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "?")
	values, err := url.ParseQuery(raw)
	if err != nil {
		values = url.Values{}
	}
	return &LinkBar{values: values}
}

// Query returns the current query parameters.
func (b *LinkBar) Query() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot := url.Values{}
	for key, list := range b.values {
		snapshot[key] = append([]string(nil), list...)
	}
	return snapshot
}

// Replace swaps the current query parameters in place.
func (b *LinkBar) Replace(values url.Values) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values = values
}

// Link renders the shareable link, or "" when no filters are applied.
func (b *LinkBar) Link() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.values) == 0 {
		return ""
	}
	return "?" + b.values.Encode()
}
