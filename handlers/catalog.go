package handlers

import (
	"net/http"
	"strconv"

	"locallink/models"
	"locallink/services/catalog"
	"locallink/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the search engine, the location index, and the
// provider-facing listing CRUD.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

// SearchHandler serves GET /api/services.
func (h *CatalogHandler) SearchHandler(c *gin.Context) {
	criteria := models.SearchCriteria{
		Keyword:  c.Query("keyword"),
		Country:  c.Query("country"),
		City:     c.Query("city"),
		Area:     c.Query("area"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Radius:   c.Query("radius"),
	}
	if v, err := strconv.ParseFloat(c.Query("minRating"), 64); err == nil {
		criteria.MinRating = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		criteria.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		criteria.Limit = v
	}
	if lat, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		if lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64); lngErr == nil {
			criteria.Lat = &lat
			criteria.Lng = &lng
		}
	}

	result, err := h.Svc.Search(c.Request.Context(), criteria)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetServiceHandler serves GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Svc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CountriesHandler serves GET /api/services/locations/countries.
func (h *CatalogHandler) CountriesHandler(c *gin.Context) {
	countries, err := h.Svc.Countries(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"countries": countries})
}

// CitiesHandler serves GET /api/services/locations/cities/:country.
func (h *CatalogHandler) CitiesHandler(c *gin.Context) {
	cities, err := h.Svc.Cities(c.Request.Context(), c.Param("country"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

// AreasHandler serves GET /api/services/locations/areas/:country/:city.
func (h *CatalogHandler) AreasHandler(c *gin.Context) {
	areas, err := h.Svc.Areas(c.Request.Context(), c.Param("country"), c.Param("city"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// CreateServiceHandler serves POST /api/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input catalog.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Svc.CreateService(c.Request.Context(), principal, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler serves PUT /api/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input catalog.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	svc, err := h.Svc.UpdateService(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler serves DELETE /api/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteService(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// ToggleAvailabilityHandler serves PATCH /api/services/:id/availability.
func (h *CatalogHandler) ToggleAvailabilityHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	active, err := h.Svc.ToggleAvailability(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isActive": active})
}

// UpdatePricingHandler serves PATCH /api/services/:id/pricing.
func (h *CatalogHandler) UpdatePricingHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input catalog.PricingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Svc.UpdatePricing(c.Request.Context(), principal, c.Param("id"), input); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pricing updated"})
}
