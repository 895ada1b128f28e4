package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository is the sole writer of Notification rows. The log
// is append-only: rows are never deleted and only the read flag is ever
// updated. Duplicate entries are allowed at this layer; dedup is the
// caller's responsibility.
type NotificationRepository interface {
	Append(ctx context.Context, n *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]models.Notification, error)
	UnreadCount(ctx context.Context, recipientID uint) (int64, error)
	MarkRead(ctx context.Context, recipientID, notificationID uint) (bool, error)
	MarkAllRead(ctx context.Context, recipientID uint) (int64, error)
}

// notificationRepository implements NotificationRepository
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Append(ctx context.Context, n *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Preload("Actor").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// MarkRead flips the read flag for a single notification. The update is
// scoped to the recipient so users cannot touch each other's entries;
// a zero row count means "not yours or not there".
func (r *notificationRepository) MarkRead(ctx context.Context, recipientID, notificationID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("read", true)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true)
	if res.Error != nil {
		return 0, models.NewInternalError(res.Error)
	}
	return res.RowsAffected, nil
}
