package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models/dto"
	"github.com/mertcan/placeport/internal/app/services"
	"github.com/mertcan/placeport/internal/middleware"
)

// NotificationController handles notification operations
type NotificationController struct {
	notificationService *services.NotificationService
	logger              zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications returns the authenticated user's notifications.
// Pass unread=true to filter to unread ones only.
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	unreadOnly := ctx.Query("unread") == "true"

	notifications, err := c.notificationService.ListNotifications(ctx.Request.Context(), middleware.UserID(ctx), unreadOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(notifications))
}

// MarkRead marks one of the authenticated user's notifications as read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.MarkRead(ctx.Request.Context(), id, middleware.UserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Notification marked as read"})
}
