package listings

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query parameter names understood by the listings search endpoint.
const (
	ParamSearch       = "search"
	ParamLocation     = "location"
	ParamPropertyType = "propertyType"
	ParamBedrooms     = "bedrooms"
	ParamMinPrice     = "minPrice"
	ParamMaxPrice     = "maxPrice"
	ParamPurpose      = "purpose"
	ParamPage         = "page"
	ParamLimit        = "limit"
)

// CanonicalQuery is the minimal set of filter parameters sent to the
// backend. The zero value is the empty query. It is never mutated after
// construction; derived queries are new values.
type CanonicalQuery struct {
	values map[string]string
}

// BuildQuery converts a FilterState into its canonical query. Absent, empty
// and "all" values are left out. Price bounds are passed through as given,
// including a minimum above the maximum.
func BuildQuery(f FilterState) CanonicalQuery {
	values := make(map[string]string)
	setText(values, ParamSearch, f.Search)
	setText(values, ParamLocation, f.Location)
	setSelect(values, ParamPropertyType, f.PropertyType)
	setSelect(values, ParamBedrooms, f.Bedrooms)
	setOptional(values, ParamMinPrice, f.MinPrice)
	setOptional(values, ParamMaxPrice, f.MaxPrice)
	if f.Purpose != nil {
		p := string(*f.Purpose)
		setSelect(values, ParamPurpose, &p)
	}
	return CanonicalQuery{values: values}
}

// Get returns the value for key and whether it is present.
func (q CanonicalQuery) Get(key string) (string, bool) {
	v, ok := q.values[key]
	return v, ok
}

// Len returns the number of parameters.
func (q CanonicalQuery) Len() int {
	return len(q.values)
}

// Keys returns the parameter names in sorted order.
func (q CanonicalQuery) Keys() []string {
	keys := make([]string, 0, len(q.values))
	for k := range q.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the parameters.
func (q CanonicalQuery) Map() map[string]string {
	m := make(map[string]string, len(q.values))
	for k, v := range q.values {
		m[k] = v
	}
	return m
}

// Equal reports whether q and other hold the same parameters.
func (q CanonicalQuery) Equal(other CanonicalQuery) bool {
	if len(q.values) != len(other.values) {
		return false
	}
	for k, v := range q.values {
		if ov, ok := other.values[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// ForPage returns a new query with page and limit added.
func (q CanonicalQuery) ForPage(page, limit int) CanonicalQuery {
	m := q.Map()
	m[ParamPage] = strconv.Itoa(page)
	m[ParamLimit] = strconv.Itoa(limit)
	return CanonicalQuery{values: m}
}

// Values returns the parameters as url.Values.
func (q CanonicalQuery) Values() url.Values {
	v := make(url.Values, len(q.values))
	for k, val := range q.values {
		v.Set(k, val)
	}
	return v
}

// Encode returns the URL-encoded form, sorted by key.
func (q CanonicalQuery) Encode() string {
	return q.Values().Encode()
}

// String implements fmt.Stringer.
func (q CanonicalQuery) String() string {
	return q.Encode()
}

func setText(m map[string]string, key, v string) {
	if v = strings.TrimSpace(v); v != "" {
		m[key] = v
	}
}

func setOptional(m map[string]string, key string, v *string) {
	if v != nil {
		setText(m, key, *v)
	}
}

func setSelect(m map[string]string, key string, v *string) {
	if v == nil || strings.EqualFold(strings.TrimSpace(*v), SelectAll) {
		return
	}
	setText(m, key, *v)
}
