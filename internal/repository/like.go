package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository is the sole writer of Like rows. The create-or-skip
// decision is atomic per (user, post) pair: concurrent duplicate requests
// store exactly one row and report created to exactly one caller.
type LikeRepository interface {
	Create(ctx context.Context, userID, postID uint) (created bool, err error)
	// CreateWithNotification creates the like and, when the like was
	// actually created and n is non-nil, appends n in the same database
	// transaction. A failed notification rolls the like back.
	CreateWithNotification(ctx context.Context, userID, postID uint, n *models.Notification) (created bool, err error)
	Delete(ctx context.Context, userID, postID uint) (removed bool, err error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	CountForPost(ctx context.Context, postID uint) (int64, error)
}

// likeRepository implements LikeRepository
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// createLike inserts the like if absent. ON CONFLICT DO NOTHING makes the
// check-then-act atomic on the (user_id, post_id) unique index without a
// separate SELECT.
func createLike(tx *gorm.DB, userID, postID uint) (bool, error) {
	like := &models.Like{UserID: userID, PostID: postID}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(like)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepository) Create(ctx context.Context, userID, postID uint) (bool, error) {
	created, err := createLike(r.db.WithContext(ctx), userID, postID)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	if created {
		cache.InvalidatePost(ctx, postID)
	}
	return created, nil
}

func (r *likeRepository) CreateWithNotification(ctx context.Context, userID, postID uint, n *models.Notification) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		created, txErr = createLike(tx, userID, postID)
		if txErr != nil {
			return txErr
		}
		// The duplicate-like short-circuit: an existing like emits nothing.
		if !created || n == nil {
			return nil
		}
		return tx.Create(n).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	if created {
		cache.InvalidatePost(ctx, postID)
	}
	return created, nil
}

// Delete removes the like if present and reports whether a row was removed.
func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return res.RowsAffected > 0, nil
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
