package services

import (
	"context"
	"time"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/repositories"
	"homeinsight-listings/internal/transformers"
	"homeinsight-listings/internal/utils"
	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/metrics"

	"github.com/karlseguin/ccache/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyService struct {
	repo        repositories.PropertyRepository
	local       *ccache.Cache[*models.Property]
	transformer transformers.PropertyTransformer
	ttl         time.Duration
}

// NewPropertyService keeps up to size listings in memory for ttl.
func NewPropertyService(repo repositories.PropertyRepository, size int64, ttl time.Duration) *PropertyService {
	return &PropertyService{
		repo:        repo,
		local:       ccache.New(ccache.Configure[*models.Property]().MaxSize(size)),
		transformer: transformers.NewPropertyTransformer(),
		ttl:         ttl,
	}
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	key := cache.PropertyKey(id.Hex())
	if item := s.local.Get(key); item != nil && !item.Expired() {
		metrics.CacheHitsTotal.WithLabelValues("property").Inc()
		return item.Value(), nil
	}
	metrics.CacheMissesTotal.WithLabelValues("property").Inc()

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.LogAndMapError(err, "GetPropertyByID", "id", id.Hex())
	}

	property = s.transformer.Normalize(property)
	s.local.Set(key, property, s.ttl)
	return property, nil
}

// Stop releases the in-memory cache's background worker.
func (s *PropertyService) Stop() {
	s.local.Stop()
}
