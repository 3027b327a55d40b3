// Package listings implements the search, filter and pagination data-flow
// shared by the Buy, Rent and admin property views: building a canonical
// query from filter inputs, fetching one page of results, merging pages into
// the displayed result set and tracking pagination.
package listings

import "strings"

// Purpose is the listing purpose recognised by the search endpoint.
type Purpose string

const (
	PurposeSale  Purpose = "sale"
	PurposeRent  Purpose = "rent"
	PurposeLease Purpose = "lease"
)

// Valid reports whether p is one of the purposes the backend accepts.
func (p Purpose) Valid() bool {
	switch p {
	case PurposeSale, PurposeRent, PurposeLease:
		return true
	}
	return false
}

// SelectAll is the value select controls use for "no constraint".
const SelectAll = "all"

// FilterState holds the user's filter choices. Text fields use the empty
// string for "no constraint"; every other dimension is nil when unset.
// Price bounds stay strings so malformed input reaches the backend as typed.
type FilterState struct {
	Search       string
	Location     string
	PropertyType *string
	Bedrooms     *string
	MinPrice     *string
	MaxPrice     *string
	Purpose      *Purpose
}

// Sentinels lists the control defaults that stand for "no constraint".
type Sentinels struct {
	PriceFloor   string
	PriceCeiling string
}

// DefaultSentinels matches the bounds of the listing views' price slider.
var DefaultSentinels = Sentinels{PriceFloor: "0", PriceCeiling: "2000"}

// FilterInput is the raw value of each filter control as the view holds it.
type FilterInput struct {
	Search       string
	Location     string
	PropertyType string
	Bedrooms     string
	MinPrice     string
	MaxPrice     string
	Purpose      string
}

// State converts raw control values into a FilterState, dropping sentinel
// values so they can never be sent as filters.
func (in FilterInput) State(s Sentinels) FilterState {
	f := FilterState{
		Search:       strings.TrimSpace(in.Search),
		Location:     strings.TrimSpace(in.Location),
		PropertyType: selectValue(in.PropertyType),
		Bedrooms:     selectValue(in.Bedrooms),
		MinPrice:     boundValue(in.MinPrice, s.PriceFloor),
		MaxPrice:     boundValue(in.MaxPrice, s.PriceCeiling),
	}
	if p := selectValue(in.Purpose); p != nil {
		purpose := Purpose(strings.ToLower(*p))
		f.Purpose = &purpose
	}
	return f
}

// WithPurpose returns a copy of f constrained to p.
func (f FilterState) WithPurpose(p Purpose) FilterState {
	f.Purpose = &p
	return f
}

// IsZero reports whether f places no constraint at all.
func (f FilterState) IsZero() bool {
	return BuildQuery(f).Len() == 0
}

// String returns a pointer to v, for filling optional filter fields.
func String(v string) *string {
	return &v
}

func selectValue(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, SelectAll) {
		return nil
	}
	return &v
}

func boundValue(v, sentinel string) *string {
	v = strings.TrimSpace(v)
	if v == "" || (sentinel != "" && v == sentinel) {
		return nil
	}
	return &v
}
