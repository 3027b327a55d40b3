package transformers

import (
	"testing"

	"homeinsight-listings/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := &models.Property{
		PropertyName: "  Palm Villa ",
		Location:     " Brodipet,   Guntur ",
		Purpose:      "Rent",
		Status:       "APPROVED",
		Images:       []string{"/uploads/a.jpg", " ", ""},
	}
	got := NewPropertyTransformer().Normalize(p)

	assert.Equal(t, "Palm Villa", got.PropertyName)
	assert.Equal(t, "Brodipet, Guntur", got.Location)
	assert.Equal(t, models.PurposeRent, got.Purpose)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Equal(t, []string{"/uploads/a.jpg"}, got.Images)
}

func TestNormalize_NilImagesBecomeEmpty(t *testing.T) {
	got := NewPropertyTransformer().Normalize(&models.Property{})
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)
	assert.Nil(t, NewPropertyTransformer().Normalize(nil))
}

func TestNormalizeList(t *testing.T) {
	tr := NewPropertyTransformer()
	assert.Equal(t, []models.Property{}, tr.NormalizeList(nil))

	list := tr.NormalizeList([]models.Property{{PropertyName: " a "}, {PropertyName: "b "}})
	assert.Equal(t, "a", list[0].PropertyName)
	assert.Equal(t, "b", list[1].PropertyName)
}
