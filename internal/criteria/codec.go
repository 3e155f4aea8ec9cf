package criteria

import (
	"net/url"
	"strconv"
	"strings"
)

// Query-string keys. Fields at their default are omitted on encode; absence
// on decode means the default applies. The asymmetry keeps shared links
// short and is deliberate.
const (
	ParamSearch     = "q"
	ParamScope      = "scope"
	ParamProviders  = "providers"
	ParamTypes      = "types"
	ParamTags       = "tags"
	ParamSort       = "sort"
	ParamFavorites  = "favorites"
	ParamNew        = "new"
	ParamHot        = "hot"
	ParamComingSoon = "coming"
	ParamRTPMin     = "rtp_min"
	ParamRTPMax     = "rtp_max"
	ParamPage       = "page"
	ParamPageSize   = "size"
)

// Encode serializes c into query parameters. Defaults are omitted, set fields
// are comma-joined in their held order, booleans appear only when true, and
// RTP bounds appear only when set.
func Encode(c Criteria) url.Values {
	values := url.Values{}
	if text := strings.TrimSpace(c.SearchText); text != "" {
		values.Set(ParamSearch, text)
	}
	if c.SearchScope != ScopeAll && ValidScope(c.SearchScope) {
		values.Set(ParamScope, string(c.SearchScope))
	}
	if len(c.Providers) > 0 {
		values.Set(ParamProviders, strings.Join(c.Providers, ","))
	}
	if len(c.Types) > 0 {
		values.Set(ParamTypes, strings.Join(c.Types, ","))
	}
	if len(c.Tags) > 0 {
		values.Set(ParamTags, strings.Join(c.Tags, ","))
	}
	if c.SortBy != SortPopular && ValidSort(c.SortBy) {
		values.Set(ParamSort, string(c.SortBy))
	}
	if c.FavoritesOnly {
		values.Set(ParamFavorites, "true")
	}
	if c.NewOnly {
		values.Set(ParamNew, "true")
	}
	if c.HotOnly {
		values.Set(ParamHot, "true")
	}
	if c.ComingSoonOnly {
		values.Set(ParamComingSoon, "true")
	}
	if c.RTPMin >= 0 {
		values.Set(ParamRTPMin, formatRTP(c.RTPMin))
	}
	if c.RTPMax >= 0 {
		values.Set(ParamRTPMax, formatRTP(c.RTPMax))
	}
	if c.Page > DefaultPage {
		values.Set(ParamPage, strconv.Itoa(c.Page))
	}
	if c.PageSize > 0 && c.PageSize != DefaultPageSize {
		values.Set(ParamPageSize, strconv.Itoa(c.PageSize))
	}
	return values
}

// Decode parses query parameters into a Partial. It is total: malformed
// values are dropped, unrecognized keys ignored, and nothing panics. Page is
// taken verbatim (clamped to 1); decoding never infers a page reset.
func Decode(values url.Values) Partial {
	var p Partial

	if values.Has(ParamSearch) {
		text := strings.TrimSpace(values.Get(ParamSearch))
		if text != "" {
			p.SearchText = &text
		}
	}
	if raw := values.Get(ParamScope); raw != "" {
		scope := Scope(strings.ToLower(strings.TrimSpace(raw)))
		if ValidScope(scope) {
			p.SearchScope = &scope
		}
	}
	if list := decodeList(values.Get(ParamProviders)); list != nil {
		p.Providers = list
	}
	if list := decodeList(values.Get(ParamTypes)); list != nil {
		p.Types = list
	}
	if list := decodeList(values.Get(ParamTags)); list != nil {
		p.Tags = list
	}
	if raw := values.Get(ParamSort); raw != "" {
		sort := Sort(strings.ToLower(strings.TrimSpace(raw)))
		if ValidSort(sort) {
			p.SortBy = &sort
		}
	}
	p.FavoritesOnly = decodeBool(values.Get(ParamFavorites))
	p.NewOnly = decodeBool(values.Get(ParamNew))
	p.HotOnly = decodeBool(values.Get(ParamHot))
	p.ComingSoonOnly = decodeBool(values.Get(ParamComingSoon))
	if bound, ok := decodeRTP(values.Get(ParamRTPMin)); ok {
		p.RTPMin = &bound
	}
	if bound, ok := decodeRTP(values.Get(ParamRTPMax)); ok {
		p.RTPMax = &bound
	}
	if page, ok := decodePositiveInt(values.Get(ParamPage)); ok {
		p.Page = &page
	}
	if size, ok := decodePositiveInt(values.Get(ParamPageSize)); ok {
		p.PageSize = &size
	}
	return p
}

func decodeList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return NormalizeSet(strings.Split(raw, ","))
}

// decodeBool returns a flag only for affirmative values; encode writes only
// true flags, so anything else simply falls back to the default.
func decodeBool(raw string) *bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		on := true
		return &on
	}
	return nil
}

func decodeRTP(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	bound, err := strconv.ParseFloat(raw, 64)
	if err != nil || bound < 0 || bound > 100 {
		return 0, false
	}
	return bound, true
}

// decodePositiveInt clamps values below 1 rather than rejecting them; a
// hand-edited link with page=0 should land on page 1, not error out.
func decodePositiveInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if n < 1 {
		n = 1
	}
	return n, true
}

func formatRTP(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
