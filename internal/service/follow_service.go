package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService provides follow-graph business logic. Edges are directed
// and idempotent: repeating a follow or unfollow is reported, not rejected.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	notifier   EngagementNotifier
}

// FollowResult reports the outcome of a follow or unfollow operation.
type FollowResult struct {
	// Changed is false when the edge was already in the requested state.
	Changed bool
	Target  *models.User
}

// NewFollowService returns a new FollowService. notifier may be nil when
// follow notifications are disabled.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository, notifier EngagementNotifier) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// Follow creates a follow edge from the user to the target. Following
// yourself is rejected; following a missing user is a not-found. A freshly
// created edge notifies the target; repeating an existing follow does not.
func (s *FollowService) Follow(ctx context.Context, userID, targetID uint) (*FollowResult, error) {
	if userID == targetID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	created, err := s.followRepo.Create(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	if created && s.notifier != nil {
		if _, err := s.notifier.Notify(ctx, targetID, userID, models.VerbStartedFollowing, models.TargetTypeUser, userID); err != nil {
			return nil, err
		}
	}

	return &FollowResult{Changed: created, Target: target}, nil
}

// Unfollow removes the follow edge if present. Unfollowing someone you do
// not follow is a no-op; no notification is ever emitted or retracted.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetID uint) (*FollowResult, error) {
	if userID == targetID {
		return nil, models.NewValidationError("You cannot unfollow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	removed, err := s.followRepo.Delete(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}

	return &FollowResult{Changed: removed, Target: target}, nil
}

// IsFollowing reports whether the user follows the target.
func (s *FollowService) IsFollowing(ctx context.Context, userID, targetID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, userID, targetID)
}

// ListFollowers returns the users following the given user, newest edge first.
func (s *FollowService) ListFollowers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowers(ctx, userID, limit, offset)
}

// ListFollowing returns the users the given user follows, newest edge first.
func (s *FollowService) ListFollowing(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.ListFollowing(ctx, userID, limit, offset)
}
