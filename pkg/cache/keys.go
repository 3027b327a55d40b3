package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// prefix shared by all cached search pages.
const searchKeyPrefix = "listings:search:"

// free-text parameters; the database matches them case-insensitively.
var foldedParams = map[string]bool{
	"search":   true,
	"location": true,
}

// SearchKey is the cache key for one page of a public search. Parameters are
// sorted, empty values dropped and text values lower-cased, so equivalent
// queries share a key.
func SearchKey(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if strings.TrimSpace(v) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := strings.TrimSpace(params[k])
		if foldedParams[k] {
			v = strings.ToLower(v)
		}
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
	}
	return searchKeyPrefix + strings.Join(parts, "&")
}

// cache key for a specific property.
func PropertyKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}
