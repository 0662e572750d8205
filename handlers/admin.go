package handlers

import (
	"net/http"

	"locallink/services/admin"
	"locallink/services/report"
	"locallink/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin subtree: dashboard stats, user listing,
// category and event management, and report moderation.
type AdminHandler struct {
	Svc     admin.AdminService
	Reports report.ReportService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService, reports report.ReportService) *AdminHandler {
	return &AdminHandler{Svc: svc, Reports: reports}
}

// StatsHandler serves GET /api/admin/stats.
func (h *AdminHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListUsersHandler serves GET /api/admin/users.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListCategoriesHandler serves GET /api/admin/categories.
func (h *AdminHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateCategoryHandler serves POST /api/admin/categories.
func (h *AdminHandler) CreateCategoryHandler(c *gin.Context) {
	var input admin.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// UpdateCategoryHandler serves PUT /api/admin/categories/:id.
func (h *AdminHandler) UpdateCategoryHandler(c *gin.Context) {
	var input admin.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	cat, err := h.Svc.UpdateCategory(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategoryHandler serves DELETE /api/admin/categories/:id.
func (h *AdminHandler) DeleteCategoryHandler(c *gin.Context) {
	if err := h.Svc.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}

// ListEventsHandler serves GET /api/admin/events.
func (h *AdminHandler) ListEventsHandler(c *gin.Context) {
	events, err := h.Svc.ListEvents(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEventHandler serves POST /api/admin/events.
func (h *AdminHandler) CreateEventHandler(c *gin.Context) {
	var input admin.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	ev, err := h.Svc.CreateEvent(c.Request.Context(), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// UpdateEventHandler serves PUT /api/admin/events/:id.
func (h *AdminHandler) UpdateEventHandler(c *gin.Context) {
	var input admin.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	ev, err := h.Svc.UpdateEvent(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// DeleteEventHandler serves DELETE /api/admin/events/:id.
func (h *AdminHandler) DeleteEventHandler(c *gin.Context) {
	if err := h.Svc.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// ListReportsHandler serves GET /api/admin/reports.
func (h *AdminHandler) ListReportsHandler(c *gin.Context) {
	reports, err := h.Reports.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// ResolveReportHandler serves PUT /api/admin/reports/:id/resolve.
func (h *AdminHandler) ResolveReportHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var body struct {
		AdminResponse string `json:"adminResponse" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "an admin response is required")
		return
	}
	rep, err := h.Reports.Resolve(c.Request.Context(), principal, c.Param("id"), body.AdminResponse)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}
