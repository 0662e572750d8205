package models

// Sort modes for service search.
const (
	SortRelevance = "relevance"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// RadiusAll disables the geo constraint even when coordinates are supplied.
const RadiusAll = "all"

// SearchCriteria describes the filters, pagination, and sort order of a
// service search. All filters are optional and AND-combined; inactive
// services are always excluded.
type SearchCriteria struct {
	Keyword   string
	Country   string
	City      string
	Area      string
	Category  string
	MinRating float64
	Sort      string
	Page      int
	Limit     int

	// Geo filter: applied only when Lat and Lng are set and Radius (km, as
	// given by the client) is a positive number rather than "all".
	Lat    *float64
	Lng    *float64
	Radius string
}

// HasGeo reports whether the criteria carry a usable radius constraint.
func (c SearchCriteria) HasGeo() bool {
	return c.Lat != nil && c.Lng != nil && c.Radius != "" && c.Radius != RadiusAll
}

// SearchResult is one page of annotated services plus pagination bookkeeping.
// TotalResults comes from a separate count query, not from the page itself.
type SearchResult struct {
	Services       []AnnotatedService `json:"services"`
	CurrentPage    int                `json:"currentPage"`
	TotalPages     int                `json:"totalPages"`
	TotalResults   int64              `json:"totalResults"`
	ResultsPerPage int                `json:"resultsPerPage"`
}
