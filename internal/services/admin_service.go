package services

import (
	"context"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/repositories"
	"homeinsight-listings/internal/transformers"
	"homeinsight-listings/internal/utils"
	"homeinsight-listings/pkg/metrics"
)

type AdminService struct {
	repo        repositories.PropertyRepository
	transformer transformers.PropertyTransformer
}

func NewAdminService(repo repositories.PropertyRepository) *AdminService {
	return &AdminService{repo: repo, transformer: transformers.NewPropertyTransformer()}
}

// ListProperties returns one page over every listing whatever its status,
// plus counts across the whole collection. It is never cached.
func (s *AdminService) ListProperties(ctx context.Context, params models.SearchParams) (*models.AdminResponse, error) {
	properties, total, err := s.repo.Search(ctx, repositories.BuildSearchFilter(params), params.Skip(), params.Limit)
	if err != nil {
		return nil, utils.LogAndMapError(err, "ListProperties", "status", params.Status)
	}
	metrics.SearchResults.WithLabelValues("admin").Observe(float64(total))

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, utils.LogAndMapError(err, "Stats")
	}

	return &models.AdminResponse{
		Properties: s.transformer.NormalizeList(properties),
		Pagination: models.Pagination{
			Current: params.Page,
			Pages:   utils.TotalPages(total, params.Limit),
			Total:   total,
		},
		Stats: stats,
	}, nil
}
