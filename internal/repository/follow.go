package repository

import (
	"context"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow-graph data operations.
// Edges are sets: creating an existing edge and removing a missing edge are
// both reported, never errors.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followeeID uint) (created bool, err error)
	Delete(ctx context.Context, followerID, followeeID uint) (removed bool, err error)
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
	ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the follow edge if absent. ON CONFLICT DO NOTHING keeps
// the insert atomic per (follower, followee) pair under concurrent requests.
func (r *followRepository) Create(ctx context.Context, followerID, followeeID uint) (bool, error) {
	follow := &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
			DoNothing: true,
		}).
		Create(follow)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followeeID)
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateUser(ctx, followerID)
		cache.InvalidateUser(ctx, followeeID)
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// GetFollowingIDs returns the ids of every user the given user follows.
// A user following nobody gets an empty slice.
func (r *followRepository) GetFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.follower_id").
		Where("f.followee_id = ?", userID).
		Order("f.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.followee_id").
		Where("f.follower_id = ?", userID).
		Order("f.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
