package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edumanage/postgrad-api/internal/service"
	"github.com/edumanage/postgrad-api/pkg/response"
)

// NotificationHandler exposes the derived alert feed.
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler constructs a notification handler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// List godoc
// @Summary List derived alerts
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	notis, err := h.service.Derive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, notis, nil)
}
