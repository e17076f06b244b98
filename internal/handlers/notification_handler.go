package handlers

import (
	"net/http"

	"membrostotal_backend/internal/middleware"
	"membrostotal_backend/internal/models"
	"membrostotal_backend/internal/services"
	"membrostotal_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.ListOwn)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PATCH("/:id/read", h.MarkAsRead)
	}

	admin := r.Group("/admin/notifications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireProfiles(models.ProfileAdmin))
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *NotificationHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"

	envelope, err := h.notificationService.ListForUser(userID, ParsePagination(c), unreadOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.MarkAsRead(userID, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	notification, err := h.notificationService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessWithID(notification.ID))
}

func (h *NotificationHandler) List(c *gin.Context) {
	envelope, err := h.notificationService.List(ParsePagination(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := ParseParamID(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.notificationService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success())
}
