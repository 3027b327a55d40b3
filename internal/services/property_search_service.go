package services

import (
	"context"
	"strconv"
	"time"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/repositories"
	"homeinsight-listings/internal/transformers"
	"homeinsight-listings/internal/utils"
	"homeinsight-listings/pkg/cache"
	"homeinsight-listings/pkg/logger"
	"homeinsight-listings/pkg/metrics"
)

// Data sources reported back to the handler for request logging.
const (
	SourceCache    = "REDIS"
	SourceDatabase = "DATABASE"
)

type PropertySearchService struct {
	repo        repositories.PropertyRepository
	cache       repositories.SearchCache
	transformer transformers.PropertyTransformer
	ttl         time.Duration
}

func NewPropertySearchService(repo repositories.PropertyRepository, cache repositories.SearchCache, ttl time.Duration) *PropertySearchService {
	return &PropertySearchService{
		repo:        repo,
		cache:       cache,
		transformer: transformers.NewPropertyTransformer(),
		ttl:         ttl,
	}
}

// Search returns one page of approved listings. Cached pages are served
// first; a cache failure falls back to the database.
func (s *PropertySearchService) Search(ctx context.Context, params models.SearchParams) (*models.SearchResponse, string, error) {
	key := cache.SearchKey(cacheParams(params))

	if s.cache != nil {
		cached, err := s.cache.GetSearch(ctx, key)
		if err != nil {
			logger.GlobalLogger.Errorf("Search cache read failed, using database: key=%s, error=%v", key, err)
		}
		if cached != nil {
			metrics.CacheHitsTotal.WithLabelValues("search").Inc()
			return cached, SourceCache, nil
		}
		metrics.CacheMissesTotal.WithLabelValues("search").Inc()
	}

	properties, total, err := s.repo.Search(ctx, repositories.BuildSearchFilter(params), params.Skip(), params.Limit)
	if err != nil {
		return nil, "", utils.LogAndMapError(err, "Search", "key", key)
	}
	metrics.SearchResults.WithLabelValues("public").Observe(float64(total))

	resp := &models.SearchResponse{
		Properties: s.transformer.NormalizeList(properties),
		Pagination: models.Pagination{
			Current: params.Page,
			Pages:   utils.TotalPages(total, params.Limit),
			Total:   total,
		},
	}

	if s.cache != nil {
		if err := s.cache.SetSearch(ctx, key, resp, s.ttl); err != nil {
			logger.GlobalLogger.Errorf("Search cache write failed: key=%s, error=%v", key, err)
		}
	}
	return resp, SourceDatabase, nil
}

func cacheParams(p models.SearchParams) map[string]string {
	m := map[string]string{
		"search":       p.Search,
		"location":     p.Location,
		"propertyType": p.PropertyType,
		"bedrooms":     p.Bedrooms,
		"purpose":      p.Purpose,
		"status":       p.Status,
		"page":         strconv.Itoa(p.Page),
		"limit":        strconv.Itoa(p.Limit),
	}
	if p.MinPrice != nil {
		m["minPrice"] = strconv.FormatFloat(*p.MinPrice, 'f', -1, 64)
	}
	if p.MaxPrice != nil {
		m["maxPrice"] = strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64)
	}
	return m
}
