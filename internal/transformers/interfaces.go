package transformers

import "homeinsight-listings/internal/models"

type PropertyTransformer interface {
	Normalize(p *models.Property) *models.Property
	NormalizeList(properties []models.Property) []models.Property
}
