package handlers

import (
	"net/http"

	"maintdesk_backend/internal/appErrors"
	"maintdesk_backend/internal/dto"
	"maintdesk_backend/internal/middleware"
	"maintdesk_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService *services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{BaseHandler: base, notificationService: notificationService}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PUT("/:id/read", h.MarkAsRead)
		notifications.PUT("/read-all", h.MarkAllAsRead)
		notifications.DELETE("/:id", h.Delete)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread_only") == "true"
	rows, err := h.notificationService.List(identity, unreadOnly)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(identity)
	if err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{UnreadCount: count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAsRead(identity, c.Param("id")); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllAsRead(identity); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "All notifications marked as read"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	identity, ok := h.Identity(c)
	if !ok {
		return
	}

	if err := h.notificationService.Delete(identity, c.Param("id")); err != nil {
		appErrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification deleted"})
}
