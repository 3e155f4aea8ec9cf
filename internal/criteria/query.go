package criteria

// Query is the exact request shape the catalog fetch client expects. Unlike
// the URL form it always carries Page and PageSize, and its slices are copies
// so a held Query cannot alias live Criteria state.
type Query struct {
	Search string
	Scope  Scope

	Providers []string
	Types     []string
	Tags      []string

	Sort Sort

	FavoritesOnly  bool
	NewOnly        bool
	HotOnly        bool
	ComingSoonOnly bool

	RTPMin float64
	RTPMax float64

	Page     int
	PageSize int
}

// BuildQuery derives the fetch query for c.
func BuildQuery(c Criteria) Query {
	c = c.Clamp().Clone()
	return Query{
		Search:         c.SearchText,
		Scope:          c.SearchScope,
		Providers:      c.Providers,
		Types:          c.Types,
		Tags:           c.Tags,
		Sort:           c.SortBy,
		FavoritesOnly:  c.FavoritesOnly,
		NewOnly:        c.NewOnly,
		HotOnly:        c.HotOnly,
		ComingSoonOnly: c.ComingSoonOnly,
		RTPMin:         c.RTPMin,
		RTPMax:         c.RTPMax,
		Page:           c.Page,
		PageSize:       c.PageSize,
	}
}
