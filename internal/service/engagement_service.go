// Package service contains the business logic for the application.
package service

import (
	"context"

	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/repository"
)

// NotificationPublisher delivers stored notifications to connected
// recipients (e.g. over Redis pub/sub + WebSocket). Delivery is
// best-effort; the stored row is the source of truth.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, n *models.Notification)
}

// EngagementNotifier appends notifications on behalf of other services so
// that every Notification row is written through the engagement engine.
type EngagementNotifier interface {
	Notify(ctx context.Context, recipientID, actorID uint, verb, targetType string, targetID uint) (*models.Notification, error)
}

// EngagementService implements the social feed and the like/unlike toggle
// together with their notification side effects. The authenticated user is
// always passed in explicitly; the service never reads identity from
// ambient state.
type EngagementService struct {
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
	likeRepo   repository.LikeRepository
	notifRepo  repository.NotificationRepository
	publisher  NotificationPublisher
}

// LikeResult reports the outcome of a like operation.
type LikeResult struct {
	// Created is false when the like already existed ("Already liked").
	Created bool
	// Notification is the appended notification, nil for duplicate likes
	// and self-likes.
	Notification *models.Notification
}

// NewEngagementService returns a new EngagementService. publisher may be
// nil when realtime delivery is unavailable.
func NewEngagementService(
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
	likeRepo repository.LikeRepository,
	notifRepo repository.NotificationRepository,
	publisher NotificationPublisher,
) *EngagementService {
	return &EngagementService{
		postRepo:   postRepo,
		followRepo: followRepo,
		likeRepo:   likeRepo,
		notifRepo:  notifRepo,
		publisher:  publisher,
	}
}

// Feed returns posts authored by users the given user follows, newest
// first. A user following nobody gets an empty feed, not an error. The
// follow set and the post read happen within the same logical request; the
// feed is composed on demand and never materialized.
func (s *EngagementService) Feed(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	followingIDs, err := s.followRepo.GetFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.postRepo.ListByAuthors(ctx, followingIDs, limit, offset, userID)
}

// Like records the user's like on the post. Liking an already-liked post is
// a no-op that reports Created=false and emits nothing. A fresh like on
// someone else's post appends a "liked your post" notification in the same
// transaction as the like row; self-likes store the like but never notify.
func (s *EngagementService) Like(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	var n *models.Notification
	if post.UserID != userID {
		n = &models.Notification{
			RecipientID: post.UserID,
			ActorID:     userID,
			Verb:        models.VerbLikedPost,
			TargetType:  models.TargetTypePost,
			TargetID:    post.ID,
		}
	}

	created, err := s.likeRepo.CreateWithNotification(ctx, userID, postID, n)
	if err != nil {
		return nil, err
	}
	if !created {
		return &LikeResult{Created: false}, nil
	}

	if n != nil {
		middleware.NotificationsEmitted.WithLabelValues(n.Verb).Inc()
		if s.publisher != nil {
			s.publisher.PublishNotification(ctx, n)
		}
	}
	return &LikeResult{Created: true, Notification: n}, nil
}

// Unlike removes the user's like on the post if present and reports
// whether a removal occurred. Unliking never emits a notification and
// never retracts one: the notification log is append-only.
func (s *EngagementService) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, userID); err != nil {
		return false, err
	}
	return s.likeRepo.Delete(ctx, userID, postID)
}

// Notify appends a notification and fans it out. Self-engagement is
// silently skipped so that "actor == recipient never notifies" holds for
// every verb, not just likes. The sink itself never dedups; callers that
// need duplicate suppression short-circuit before calling.
func (s *EngagementService) Notify(ctx context.Context, recipientID, actorID uint, verb, targetType string, targetID uint) (*models.Notification, error) {
	if recipientID == actorID {
		return nil, nil
	}

	n := &models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
	}
	if err := s.notifRepo.Append(ctx, n); err != nil {
		return nil, err
	}

	middleware.NotificationsEmitted.WithLabelValues(verb).Inc()
	if s.publisher != nil {
		s.publisher.PublishNotification(ctx, n)
	}
	return n, nil
}
