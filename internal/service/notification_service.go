package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// NotificationService provides the read side of the notification log. All
// queries are scoped to the recipient; one user can never read or flip
// another user's entries.
type NotificationService struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationService(notifRepo repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// ListNotifications returns the user's notifications, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID uint, limit, offset int) ([]models.Notification, error) {
	return s.notifRepo.ListByRecipient(ctx, userID, limit, offset)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notifRepo.UnreadCount(ctx, userID)
}

// MarkRead marks one of the user's notifications as read. A notification
// that does not exist or belongs to someone else is a not-found.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	updated, err := s.notifRepo.MarkRead(ctx, userID, notificationID)
	if err != nil {
		return err
	}
	if !updated {
		return models.NewNotFoundError("Notification", notificationID)
	}
	return nil
}

// MarkAllRead marks every unread notification as read and returns how many
// were flipped.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	return s.notifRepo.MarkAllRead(ctx, userID)
}
