package models

// SearchParams are the validated filters of a listing search. Pointer fields
// are nil when the filter is absent.
type SearchParams struct {
	Search       string
	Location     string
	PropertyType string
	Bedrooms     string
	MinPrice     *float64
	MaxPrice     *float64
	Purpose      string
	Status       string
	Page         int
	Limit        int
}

// Skip is the number of documents before the requested page.
func (p SearchParams) Skip() int64 {
	if p.Page < 1 {
		return 0
	}
	return int64((p.Page - 1) * p.Limit)
}

type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

type SearchResponse struct {
	Properties []Property `json:"properties"`
	Pagination Pagination `json:"pagination"`
}

// Stats counts every listing by moderation state.
type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Featured int64 `json:"featured"`
}

type AdminResponse struct {
	Properties []Property `json:"properties"`
	Pagination Pagination `json:"pagination"`
	Stats      Stats      `json:"stats"`
}
