package document

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// CreateNotification creates a notification for a user. The per-user
// list is prepended so reads come back newest first without sorting.
func (s *Store) CreateNotification(ctx context.Context, userID int64, title, message string, notificationType models.NotificationType) (int64, error) {
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}

	id, err := s.nextID(ctx, "notifications")
	if err != nil {
		return 0, err
	}

	n := &models.Notification{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.setJSON(ctx, notificationKey(id), n); err != nil {
		return 0, fmt.Errorf("error creating notification: %w", err)
	}
	if err := s.client.LPush(ctx, userNotificationsKey(userID), id).Err(); err != nil {
		return 0, fmt.Errorf("error registering notification: %w", err)
	}

	return id, nil
}

// ListNotificationsForUser returns a user's notifications, newest first
func (s *Store) ListNotificationsForUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	members, err := s.client.LRange(ctx, userNotificationsKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}

	var notifications []*models.Notification
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt notification list entry %q: %w", m, err)
		}
		n, err := s.getNotification(ctx, id)
		if err != nil {
			return nil, err
		}
		if unreadOnly && n.IsRead {
			continue
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

func (s *Store) getNotification(ctx context.Context, id int64) (*models.Notification, error) {
	n := &models.Notification{}
	if err := s.getJSON(ctx, notificationKey(id), n); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("error retrieving notification: %w", err)
	}
	return n, nil
}

// MarkNotificationRead marks a notification read. Ownership is enforced
// here: updating someone else's notification is a miss, not an error
// distinguishable from a missing record.
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID, userID int64) error {
	n, err := s.getNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return apperrors.ErrNotificationNotFound
	}

	n.IsRead = true

	if err := s.setJSON(ctx, notificationKey(notificationID), n); err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	return nil
}
