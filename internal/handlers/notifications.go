package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/collabsec/admin-console/api/v1"
)

// GetNotifications returns the notification feed, newest first.
// (GET /notifications)
func (h *Handler) GetNotifications(c *gin.Context) {
	recent := h.center.Recent()

	apiNotifications := make([]v1.Notification, 0, len(recent))
	for _, n := range recent {
		apiNotifications = append(apiNotifications, v1.NewNotificationFromModel(n))
	}

	c.JSON(http.StatusOK, v1.NotificationListResponse{Notifications: apiNotifications})
}
