package repositories

import (
	"context"
	"time"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/pkg/cache"
)

type searchCache struct {
	store cache.CacheOperations
}

func NewSearchCache(store cache.CacheOperations) SearchCache {
	return &searchCache{store: store}
}

// GetSearch returns nil without error on a miss.
func (c *searchCache) GetSearch(ctx context.Context, key string) (*models.SearchResponse, error) {
	var resp models.SearchResponse
	if err := c.store.Get(ctx, key, &resp); err != nil {
		if cache.IsMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	if resp.Properties == nil {
		resp.Properties = []models.Property{}
	}
	return &resp, nil
}

func (c *searchCache) SetSearch(ctx context.Context, key string, resp *models.SearchResponse, expiration time.Duration) error {
	return c.store.Set(ctx, key, resp, expiration)
}
