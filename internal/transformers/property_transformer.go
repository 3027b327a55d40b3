package transformers

import (
	"strings"

	"homeinsight-listings/internal/models"
)

type propertyTransformer struct{}

func NewPropertyTransformer() PropertyTransformer {
	return &propertyTransformer{}
}

// Normalize trims the text fields, lower-cases the enum fields and replaces a
// null images array with an empty one, so the client sees one shape.
func (t *propertyTransformer) Normalize(p *models.Property) *models.Property {
	if p == nil {
		return nil
	}
	p.PropertyName = strings.TrimSpace(p.PropertyName)
	p.Location = collapseSpaces(p.Location)
	p.PropertyType = strings.TrimSpace(p.PropertyType)
	p.Purpose = strings.ToLower(strings.TrimSpace(p.Purpose))
	p.Status = strings.ToLower(strings.TrimSpace(p.Status))
	p.AreaUnit = strings.TrimSpace(p.AreaUnit)

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	p.Images = images
	return p
}

func (t *propertyTransformer) NormalizeList(properties []models.Property) []models.Property {
	if properties == nil {
		return []models.Property{}
	}
	for i := range properties {
		t.Normalize(&properties[i])
	}
	return properties
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
