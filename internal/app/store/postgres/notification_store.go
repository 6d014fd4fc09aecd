package postgres

import (
	"context"
	"fmt"

	"github.com/mertcan/placeport/internal/app/models"
	"github.com/mertcan/placeport/internal/pkg/apperrors"
)

// CreateNotification creates a notification for a user
func (s *Store) CreateNotification(ctx context.Context, userID int64, title, message string, notificationType models.NotificationType) (int64, error) {
	if notificationType == "" {
		notificationType = models.NotificationInfo
	}

	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, message, type, is_read)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id`,
		userID, title, message, notificationType).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating notification: %w", err)
	}

	return id, nil
}

// ListNotificationsForUser returns a user's notifications, newest first
func (s *Store) ListNotificationsForUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += ` AND is_read = false`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationRead marks a notification read. Ownership is enforced
// here: updating someone else's notification is a miss, not an error
// distinguishable from a missing record.
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID, userID int64) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE notifications SET is_read = true
		WHERE id = $1 AND user_id = $2`,
		notificationID, userID)

	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}
