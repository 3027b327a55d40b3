package listings

// PaginationState is derived from the latest successful page and replaced
// wholesale on every success.
type PaginationState struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}

// NewPaginationState derives the state from p, clamping the current page
// into [1, TotalPages].
func NewPaginationState(p *Page) PaginationState {
	if p == nil {
		return PaginationState{}
	}
	s := PaginationState{
		CurrentPage: p.Current,
		TotalPages:  p.Pages,
		TotalCount:  p.Total,
	}
	if s.TotalPages < 0 {
		s.TotalPages = 0
	}
	if s.TotalCount < 0 {
		s.TotalCount = 0
	}
	if s.CurrentPage < 1 {
		s.CurrentPage = 1
	}
	if s.TotalPages >= 1 && s.CurrentPage > s.TotalPages {
		s.CurrentPage = s.TotalPages
	}
	return s
}

// CanLoadMore reports whether another page follows the current one.
func (s PaginationState) CanLoadMore() bool {
	return s.CurrentPage < s.TotalPages
}

// HasPrevious reports whether a previous page exists.
func (s PaginationState) HasPrevious() bool {
	return s.CurrentPage > 1
}

// HasNext reports whether a next page exists.
func (s PaginationState) HasNext() bool {
	return s.CanLoadMore()
}

// PageLink is one entry of a numbered pagination control.
type PageLink struct {
	Number   int
	Ellipsis bool
	Current  bool
}

// PageWindow lays out numbered page buttons: the first and last page plus
// siblings pages on each side of current. A gap of one page shows that page;
// a wider gap collapses into a single ellipsis.
func PageWindow(current, total, siblings int) []PageLink {
	if total < 1 {
		return nil
	}
	if siblings < 0 {
		siblings = 0
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	start := max(1, current-siblings)
	end := min(total, current+siblings)

	pages := make([]int, 0, end-start+3)
	if start > 1 {
		pages = append(pages, 1)
	}
	for n := start; n <= end; n++ {
		pages = append(pages, n)
	}
	if end < total {
		pages = append(pages, total)
	}

	links := make([]PageLink, 0, len(pages)+2)
	prev := 0
	for _, n := range pages {
		switch gap := n - prev; {
		case prev == 0:
		case gap == 2:
			links = append(links, PageLink{Number: prev + 1})
		case gap > 2:
			links = append(links, PageLink{Ellipsis: true})
		}
		links = append(links, PageLink{Number: n, Current: n == current})
		prev = n
	}
	return links
}
