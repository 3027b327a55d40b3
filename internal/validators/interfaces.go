package validators

import (
	"net/url"

	"homeinsight-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyValidator interface {
	ValidateSearch(query url.Values) (models.SearchParams, error)
	ValidateAdminSearch(query url.Values) (models.SearchParams, error)
	ValidateID(id string) (primitive.ObjectID, error)
}
