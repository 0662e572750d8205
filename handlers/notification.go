package handlers

import (
	"net/http"
	"strconv"

	"locallink/services/notification"
	"locallink/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the per-user notification inbox.
type NotificationHandler struct {
	Svc notification.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// ListHandler serves GET /api/notifications.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	var limit int64 = 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	notifications, err := h.Svc.List(c.Request.Context(), principal, limit)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// UnreadCountHandler serves GET /api/notifications/unread-count.
func (h *NotificationHandler) UnreadCountHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	count, err := h.Svc.UnreadCount(c.Request.Context(), principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

// MarkReadHandler serves PUT /api/notifications/:id/read.
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.Svc.MarkRead(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
}

// MarkAllReadHandler serves PUT /api/notifications/mark-all-read.
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.Svc.MarkAllRead(c.Request.Context(), principal); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked read"})
}

// DeleteHandler serves DELETE /api/notifications/:id.
func (h *NotificationHandler) DeleteHandler(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), principal, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}
