package listings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuery_EmptyFilterGivesEmptyQuery(t *testing.T) {
	q := BuildQuery(FilterState{})
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Encode())

	q = BuildQuery(FilterInput{PropertyType: "all", Bedrooms: "all", Purpose: "all", MinPrice: "0", MaxPrice: "2000"}.State(DefaultSentinels))
	assert.Equal(t, 0, q.Len(), "sentinel inputs must not produce filters")
}

func TestBuildQuery_DropsAllSentinel(t *testing.T) {
	all := Purpose("all")
	q := BuildQuery(FilterState{
		Location:     "Guntur",
		PropertyType: String("all"),
		Bedrooms:     String("ALL"),
		Purpose:      &all,
	})

	_, ok := q.Get(ParamPropertyType)
	assert.False(t, ok)
	_, ok = q.Get(ParamBedrooms)
	assert.False(t, ok)
	_, ok = q.Get(ParamPurpose)
	assert.False(t, ok)
	assert.Equal(t, []string{ParamLocation}, q.Keys())
}

func TestBuildQuery_AllFields(t *testing.T) {
	sale := PurposeSale
	q := BuildQuery(FilterState{
		Search:       "  sea view ",
		Location:     "Vizag",
		PropertyType: String("apartment"),
		Bedrooms:     String("3"),
		MinPrice:     String("500000"),
		MaxPrice:     String("9000000"),
		Purpose:      &sale,
	})

	assert.Equal(t, map[string]string{
		"search":       "sea view",
		"location":     "Vizag",
		"propertyType": "apartment",
		"bedrooms":     "3",
		"minPrice":     "500000",
		"maxPrice":     "9000000",
		"purpose":      "sale",
	}, q.Map())
}

func TestBuildQuery_PassesInvertedAndMalformedPrices(t *testing.T) {
	q := BuildQuery(FilterState{MinPrice: String("900"), MaxPrice: String("abc")})

	min, _ := q.Get(ParamMinPrice)
	max, _ := q.Get(ParamMaxPrice)
	assert.Equal(t, "900", min)
	assert.Equal(t, "abc", max)
}

func TestBuildQuery_Idempotent(t *testing.T) {
	rent := PurposeRent
	f := FilterState{Location: "Hyderabad", Bedrooms: String("2"), Purpose: &rent}

	first := BuildQuery(f)
	second := BuildQuery(f)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Encode(), second.Encode())
}

func TestCanonicalQuery_ForPageDoesNotMutate(t *testing.T) {
	sale := PurposeSale
	q := BuildQuery(FilterState{Location: "Vijayawada", Purpose: &sale})
	paged := q.ForPage(1, 9)

	assert.Equal(t, 2, q.Len())
	assert.Equal(t, map[string]string{
		"purpose":  "sale",
		"location": "Vijayawada",
		"page":     "1",
		"limit":    "9",
	}, paged.Map())
	assert.False(t, q.Equal(paged))
}

func TestCanonicalQuery_MapIsACopy(t *testing.T) {
	q := BuildQuery(FilterState{Location: "Pune"})
	m := q.Map()
	m["location"] = "Mumbai"

	v, ok := q.Get(ParamLocation)
	require.True(t, ok)
	assert.Equal(t, "Pune", v)
}

func TestCanonicalQuery_EncodeSorted(t *testing.T) {
	q := BuildQuery(FilterState{Search: "villa", Location: "Goa"}).ForPage(2, 12)
	assert.Equal(t, "limit=12&location=Goa&page=2&search=villa", q.Encode())
}
