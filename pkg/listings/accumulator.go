package listings

// Merge says how a fetched page updates the displayed results.
type Merge int

const (
	// MergeReplace discards the displayed results.
	MergeReplace Merge = iota
	// MergeAppend adds the page's items after the displayed results.
	MergeAppend
)

// Action is the user action that triggered a fetch.
type Action int

const (
	ActionSearch Action = iota
	ActionLoadMore
	ActionGoTo
)

func (a Action) String() string {
	switch a {
	case ActionSearch:
		return "search"
	case ActionLoadMore:
		return "load_more"
	case ActionGoTo:
		return "go_to"
	}
	return "unknown"
}

// MergeFor picks the merge mode for a page fetched by action. Page 1 always
// replaces; later pages append only when they were requested by load more.
func MergeFor(action Action, page *Page) Merge {
	if page == nil || page.Current <= 1 {
		return MergeReplace
	}
	if action == ActionLoadMore {
		return MergeAppend
	}
	return MergeReplace
}

// Accumulate returns the displayed results after merging page. Items keep
// server order and are not de-duplicated. When the backend reported a
// positive total, the result never holds more items than that total.
// displayed is not modified.
func Accumulate(displayed []Listing, page *Page, mode Merge) []Listing {
	if page == nil {
		return displayed
	}

	var out []Listing
	if mode == MergeAppend {
		out = make([]Listing, 0, len(displayed)+len(page.Items))
		out = append(out, displayed...)
		out = append(out, page.Items...)
	} else {
		out = make([]Listing, len(page.Items))
		copy(out, page.Items)
	}

	if page.Total > 0 && len(out) > page.Total {
		out = out[:page.Total]
	}
	return out
}
