package criteria

// Partial carries the subset of Criteria fields present in a decoded query
// string. Pointer fields distinguish "absent" from "set to zero"; absent
// fields mean "use the default", never "clear explicitly".
type Partial struct {
	SearchText  *string
	SearchScope *Scope

	Providers []string
	Types     []string
	Tags      []string

	SortBy *Sort

	FavoritesOnly  *bool
	NewOnly        *bool
	HotOnly        *bool
	ComingSoonOnly *bool

	RTPMin *float64
	RTPMax *float64

	Page     *int
	PageSize *int
}

// Empty reports whether the partial carries no fields at all.
func (p Partial) Empty() bool {
	return p.SearchText == nil &&
		p.SearchScope == nil &&
		p.Providers == nil &&
		p.Types == nil &&
		p.Tags == nil &&
		p.SortBy == nil &&
		p.FavoritesOnly == nil &&
		p.NewOnly == nil &&
		p.HotOnly == nil &&
		p.ComingSoonOnly == nil &&
		p.RTPMin == nil &&
		p.RTPMax == nil &&
		p.Page == nil &&
		p.PageSize == nil
}

// Apply overlays the present fields onto base and returns the result. The
// page number is applied verbatim: a shared link may point directly at page 3.
func (p Partial) Apply(base Criteria) Criteria {
	if p.SearchText != nil {
		base.SearchText = *p.SearchText
	}
	if p.SearchScope != nil {
		base.SearchScope = *p.SearchScope
	}
	if p.Providers != nil {
		base.Providers = NormalizeSet(p.Providers)
	}
	if p.Types != nil {
		base.Types = NormalizeSet(p.Types)
	}
	if p.Tags != nil {
		base.Tags = NormalizeSet(p.Tags)
	}
	if p.SortBy != nil {
		base.SortBy = *p.SortBy
	}
	if p.FavoritesOnly != nil {
		base.FavoritesOnly = *p.FavoritesOnly
	}
	if p.NewOnly != nil {
		base.NewOnly = *p.NewOnly
	}
	if p.HotOnly != nil {
		base.HotOnly = *p.HotOnly
	}
	if p.ComingSoonOnly != nil {
		base.ComingSoonOnly = *p.ComingSoonOnly
	}
	if p.RTPMin != nil {
		base.RTPMin = *p.RTPMin
	}
	if p.RTPMax != nil {
		base.RTPMax = *p.RTPMax
	}
	if p.Page != nil {
		base.Page = *p.Page
	}
	if p.PageSize != nil {
		base.PageSize = *p.PageSize
	}
	return base.Clamp()
}
