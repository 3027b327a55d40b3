package validators

import (
	"fmt"
	"net/url"
	"strings"

	"homeinsight-listings/internal/errors"
	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// value select controls send for "no constraint"
const selectAll = "all"

type propertyValidator struct {
	defaultLimit int
	maxLimit     int
}

func NewPropertyValidator(defaultLimit, maxLimit int) PropertyValidator {
	return &propertyValidator{defaultLimit: defaultLimit, maxLimit: maxLimit}
}

func (v *propertyValidator) ValidateSearch(query url.Values) (models.SearchParams, error) {
	params := v.common(query)
	params.Location = textValue(query.Get("location"))
	params.Bedrooms = selectValue(query.Get("bedrooms"))
	params.MinPrice = utils.ParsePrice(query.Get("minPrice"))
	params.MaxPrice = utils.ParsePrice(query.Get("maxPrice"))
	params.Status = models.StatusApproved

	purpose, err := validPurpose(query.Get("purpose"))
	if err != nil {
		return models.SearchParams{}, err
	}
	params.Purpose = purpose
	return params, nil
}

func (v *propertyValidator) ValidateAdminSearch(query url.Values) (models.SearchParams, error) {
	params := v.common(query)

	purpose, err := validPurpose(query.Get("purpose"))
	if err != nil {
		return models.SearchParams{}, err
	}
	params.Purpose = purpose

	switch status := strings.ToLower(selectValue(query.Get("status"))); status {
	case "", models.StatusPending, models.StatusApproved, models.StatusRejected:
		params.Status = status
	default:
		return models.SearchParams{}, errors.InvalidParameters(fmt.Sprintf("Invalid status %q", status))
	}
	return params, nil
}

func (v *propertyValidator) ValidateID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, errors.NotFound(fmt.Sprintf("malformed property id %q", id))
	}
	return oid, nil
}

func (v *propertyValidator) common(query url.Values) models.SearchParams {
	return models.SearchParams{
		Search:       textValue(query.Get("search")),
		PropertyType: selectValue(query.Get("propertyType")),
		Page:         utils.ParsePage(query.Get("page")),
		Limit:        utils.ParseLimit(query.Get("limit"), v.defaultLimit, v.maxLimit),
	}
}

func validPurpose(raw string) (string, error) {
	switch p := strings.ToLower(selectValue(raw)); p {
	case "", models.PurposeSale, models.PurposeRent, models.PurposeLease:
		return p, nil
	default:
		return "", errors.InvalidParameters(fmt.Sprintf("Invalid purpose %q", p))
	}
}

// textValue trims raw and collapses runs of whitespace.
func textValue(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

func selectValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, selectAll) {
		return ""
	}
	return raw
}
