package listings

import (
	"encoding/json"
	"fmt"
)

// Listing is one property record as returned by the backend. The client does
// not validate its shape; every field is optional.
type Listing struct {
	ID           string   `json:"_id"`
	PropertyName string   `json:"propertyName,omitempty"`
	Purpose      Purpose  `json:"purpose,omitempty"`
	Price        float64  `json:"price,omitempty"`
	PropertyType string   `json:"propertyType,omitempty"`
	Location     string   `json:"location,omitempty"`
	Bedrooms     string   `json:"bedrooms,omitempty"`
	Bathrooms    string   `json:"bathrooms,omitempty"`
	Area         string   `json:"area,omitempty"`
	AreaUnit     string   `json:"areaUnit,omitempty"`
	Images       []string `json:"images,omitempty"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	Views        int      `json:"views,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

// Title returns a display name, falling back to the id.
func (l Listing) Title() string {
	if l.PropertyName != "" {
		return l.PropertyName
	}
	return l.ID
}

// Page is one batch of results plus its pagination metadata.
type Page struct {
	Items   []Listing
	Current int
	Pages   int
	Total   int
}

type pageEnvelope struct {
	Properties []Listing           `json:"properties"`
	Pagination *paginationEnvelope `json:"pagination"`
}

type paginationEnvelope struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

// DecodePage parses a search response body. A missing pagination object is
// read as page 1 of 1 with a total of 0.
func DecodePage(body []byte) (*Page, error) {
	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode listings response: %w", err)
	}

	page := &Page{
		Items:   env.Properties,
		Current: 1,
		Pages:   1,
		Total:   0,
	}
	if page.Items == nil {
		page.Items = []Listing{}
	}
	if env.Pagination != nil {
		page.Current = env.Pagination.Current
		page.Pages = env.Pagination.Pages
		page.Total = env.Pagination.Total
	}
	return page, nil
}

type propertyEnvelope struct {
	Property *Listing `json:"property"`
}

// DecodeListing parses a detail response body of the form {"property":{...}}.
func DecodeListing(body []byte) (*Listing, error) {
	var env propertyEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode property response: %w", err)
	}
	if env.Property == nil {
		return nil, fmt.Errorf("failed to decode property response: missing property")
	}
	return env.Property, nil
}
