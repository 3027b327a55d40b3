package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Moderation states of a listing.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Listing purposes.
const (
	PurposeSale  = "sale"
	PurposeRent  = "rent"
	PurposeLease = "lease"
)

type Property struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PropertyName string             `json:"propertyName" bson:"propertyName"`
	Purpose      string             `json:"purpose" bson:"purpose"`
	Price        float64            `json:"price" bson:"price"`
	PropertyType string             `json:"propertyType" bson:"propertyType"`
	Location     string             `json:"location" bson:"location"`
	Bedrooms     string             `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms    string             `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	Area         string             `json:"area,omitempty" bson:"area,omitempty"`
	AreaUnit     string             `json:"areaUnit,omitempty" bson:"areaUnit,omitempty"`
	Images       []string           `json:"images" bson:"images"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	Status       string             `json:"status" bson:"status"`
	Featured     bool               `json:"featured" bson:"featured"`
	Views        int                `json:"views" bson:"views"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type PropertyResponse struct {
	Property *Property `json:"property"`
}
