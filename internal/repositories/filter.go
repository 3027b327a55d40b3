package repositories

import (
	"regexp"

	"homeinsight-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SearchSort lists featured listings first, newest first within each group.
var SearchSort = bson.D{{Key: "featured", Value: -1}, {Key: "createdAt", Value: -1}}

// fields matched by the free-text search
var textFields = []string{"propertyName", "location", "description"}

// BuildSearchFilter translates validated params into a Mongo filter. Text
// filters are case-insensitive substring matches; the others are exact.
func BuildSearchFilter(p models.SearchParams) bson.M {
	filter := bson.M{}
	if p.Status != "" {
		filter["status"] = p.Status
	}
	if p.Purpose != "" {
		filter["purpose"] = p.Purpose
	}
	if p.PropertyType != "" {
		filter["propertyType"] = p.PropertyType
	}
	if p.Bedrooms != "" {
		filter["bedrooms"] = p.Bedrooms
	}
	if p.Location != "" {
		filter["location"] = contains(p.Location)
	}
	if p.Search != "" {
		or := make(bson.A, 0, len(textFields))
		for _, f := range textFields {
			or = append(or, bson.M{f: contains(p.Search)})
		}
		filter["$or"] = or
	}

	price := bson.M{}
	if p.MinPrice != nil {
		price["$gte"] = *p.MinPrice
	}
	if p.MaxPrice != nil {
		price["$lte"] = *p.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}
	return filter
}

func contains(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
