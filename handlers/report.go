package handlers

import (
	"net/http"

	"locallink/services/report"
	"locallink/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the user-facing report endpoints. Admin review lives
// on the admin handler.
type ReportHandler struct {
	Svc report.ReportService
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// CreateReportHandler serves POST /api/reports.
func (h *ReportHandler) CreateReportHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var input report.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rep, err := h.Svc.Create(c.Request.Context(), principal, input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rep)
}

// MyReportsHandler serves GET /api/reports/my-reports.
func (h *ReportHandler) MyReportsHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	reports, err := h.Svc.MyReports(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// GetReportHandler serves GET /api/reports/:id.
func (h *ReportHandler) GetReportHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	rep, err := h.Svc.Get(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}
