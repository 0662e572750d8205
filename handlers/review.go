package handlers

import (
	"net/http"

	"locallink/services/review"
	"locallink/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Svc review.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// CanReviewHandler serves GET /api/reviews/can-review/:serviceId.
func (h *ReviewHandler) CanReviewHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	allowed, err := h.Svc.CanReview(c.Request.Context(), principal, c.Param("serviceId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canReview": allowed})
}

// CreateReviewHandler serves POST /api/reviews/:serviceId.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input review.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rev, err := h.Svc.Create(c.Request.Context(), principal, c.Param("serviceId"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// UpdateReviewHandler serves PUT /api/reviews/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input review.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rev, err := h.Svc.Update(c.Request.Context(), principal, c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rev)
}

// DeleteReviewHandler serves DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

// ServiceReviewsHandler serves GET /api/reviews/service/:serviceId.
func (h *ReviewHandler) ServiceReviewsHandler(c *gin.Context) {
	reviews, err := h.Svc.ListByService(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
