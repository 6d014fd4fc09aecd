package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/app/store"
)

// NotificationService handles per-user notifications
type NotificationService struct {
	store  store.Store
	logger zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(store store.Store, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		store:  store,
		logger: logger,
	}
}

// ListNotifications returns the user's notifications, newest first
func (s *NotificationService) ListNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	return s.store.ListNotificationsForUser(ctx, userID, unreadOnly)
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID int64) error {
	return s.store.MarkNotificationRead(ctx, notificationID, userID)
}
