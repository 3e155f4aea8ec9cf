package hub

// Game describes a catalog entry in transport-friendly form. Favorite is
// advisory: the client overlays its own favorites before rendering.
type Game struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Title        string   `json:"title"`
	Provider     string   `json:"provider"`
	Type         string   `json:"type"`
	Tags         []string `json:"tags"`
	RTP          float64  `json:"rtp"`
	Rating       float64  `json:"rating"`
	Popularity   int      `json:"popularity"`
	ReleasedAt   string   `json:"releasedAt"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	New          bool     `json:"new"`
	Hot          bool     `json:"hot"`
	ComingSoon   bool     `json:"comingSoon"`
	Favorite     bool     `json:"favorite"`
}

// Pagination mirrors the paging block of /api/catalog responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Meta carries catalog-wide extras returned alongside a page.
type Meta struct {
	Tags []string `json:"tags"`
}

// CatalogPage mirrors the payload returned by /api/catalog.
type CatalogPage struct {
	Items      []Game     `json:"items"`
	Pagination Pagination `json:"pagination"`
	Meta       Meta       `json:"meta"`
}

// Provider describes a game studio listed by /api/providers.
type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GameCount int    `json:"gameCount"`
}

// ProviderListResponse mirrors /api/providers.
type ProviderListResponse struct {
	Providers []Provider `json:"providers"`
}
