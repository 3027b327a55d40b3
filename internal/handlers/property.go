package handlers

import (
	"context"
	"net/http"

	"homeinsight-listings/internal/models"
	"homeinsight-listings/internal/services"
	"homeinsight-listings/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys read by the logging and metrics middleware.
const (
	CtxDataSource = "data_source"
	CtxCacheHit   = "cache_hit"
)

type Searcher interface {
	Search(ctx context.Context, params models.SearchParams) (*models.SearchResponse, string, error)
}

type PropertyGetter interface {
	GetPropertyByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
}

type AdminLister interface {
	ListProperties(ctx context.Context, params models.SearchParams) (*models.AdminResponse, error)
}

type PropertyHandler struct {
	search    Searcher
	detail    PropertyGetter
	admin     AdminLister
	validator validators.PropertyValidator
}

func NewPropertyHandler(search Searcher, detail PropertyGetter, admin AdminLister, validator validators.PropertyValidator) *PropertyHandler {
	return &PropertyHandler{search: search, detail: detail, admin: admin, validator: validator}
}

// SearchProperties godoc
// @Summary Search approved listings
// @Description Paginated, filtered list of approved listings, featured first
// @Tags Properties
// @Produce json
// @Param search query string false "Free text matched against name, location and description"
// @Param location query string false "Location substring"
// @Param propertyType query string false "Property type"
// @Param bedrooms query string false "Bedroom count"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param purpose query string false "sale, rent or lease"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /properties [get]
func (h *PropertyHandler) SearchProperties(c *gin.Context) {
	params, err := h.validator.ValidateSearch(c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	resp, source, err := h.search.Search(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	c.Set(CtxDataSource, source)
	c.Set(CtxCacheHit, source == services.SourceCache)
	c.JSON(http.StatusOK, resp)
}

// GetPropertyByID godoc
// @Summary Get a listing by id
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.PropertyResponse
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id, err := h.validator.ValidateID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	property, err := h.detail.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, models.PropertyResponse{Property: property})
}

// ListAllProperties godoc
// @Summary List every listing with moderation stats
// @Tags Admin
// @Produce json
// @Param status query string false "pending, approved, rejected or all"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Security BearerAuth
// @Success 200 {object} models.AdminResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /properties/admin/all [get]
func (h *PropertyHandler) ListAllProperties(c *gin.Context) {
	params, err := h.validator.ValidateAdminSearch(c.Request.URL.Query())
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.admin.ListProperties(c.Request.Context(), params)
	if err != nil {
		c.Error(err)
		return
	}
	c.Set(CtxDataSource, services.SourceDatabase)
	c.JSON(http.StatusOK, resp)
}
