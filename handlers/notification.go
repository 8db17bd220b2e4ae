package handlers

import (
	"net/http"

	"voyago/models"
	"voyago/services/notification"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification feed endpoints.
type NotificationHandler struct {
	NotificationService notification.NotificationService
}

// ListFeedHandler handles GET /api/admin/notifications/:target/:targetId.
// Pass unreadOnly=true to hide already-read entries.
func (h *NotificationHandler) ListFeedHandler(c *gin.Context) {
	logger := utils.GetLogger()
	target := c.Param("target")
	targetID := c.Param("targetId")

	switch target {
	case models.NotifyTargetCustomer, models.NotifyTargetFleet, models.NotifyTargetDriver:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown notification target " + target})
		return
	}

	unreadOnly := c.Query("unreadOnly") == "true"
	feed, err := h.NotificationService.ListFeed(target, targetID, unreadOnly)
	if err != nil {
		logger.Error("Notification feed listing failed", zap.String("target", target), zap.String("targetId", targetID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": feed, "count": len(feed)})
}

// MarkNotificationReadHandler handles PUT /api/admin/notifications/:id/read.
func (h *NotificationHandler) MarkNotificationReadHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.NotificationService.MarkRead(id); err != nil {
		logger.Error("Failed to mark notification read", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}
