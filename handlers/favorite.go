package handlers

import (
	"net/http"

	"locallink/services/favorite"
	"locallink/utils"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler exposes the wishlist endpoints.
type FavoriteHandler struct {
	Svc favorite.FavoriteService
}

// NewFavoriteHandler creates a FavoriteHandler.
func NewFavoriteHandler(svc favorite.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc}
}

// ToggleHandler serves PUT /api/favorites/:serviceId.
func (h *FavoriteHandler) ToggleHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	isFavorite, err := h.Svc.Toggle(c.Request.Context(), principal, c.Param("serviceId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// CheckHandler serves GET /api/favorites/:serviceId.
func (h *FavoriteHandler) CheckHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	isFavorite, err := h.Svc.Check(c.Request.Context(), principal, c.Param("serviceId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}

// RemoveHandler serves DELETE /api/favorites/:serviceId.
func (h *FavoriteHandler) RemoveHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.Svc.Remove(c.Request.Context(), principal, c.Param("serviceId")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": false})
}

// ListHandler serves GET /api/favorites.
func (h *FavoriteHandler) ListHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	favorites, err := h.Svc.List(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
