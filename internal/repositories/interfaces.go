package repositories

import (
	"context"
	"time"

	"homeinsight-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyRepository interface {
	Search(ctx context.Context, filter bson.M, skip int64, limit int) ([]models.Property, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// SearchCache holds rendered search pages keyed by normalized query.
type SearchCache interface {
	GetSearch(ctx context.Context, key string) (*models.SearchResponse, error)
	SetSearch(ctx context.Context, key string, resp *models.SearchResponse, expiration time.Duration) error
}
