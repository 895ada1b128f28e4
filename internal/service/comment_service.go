package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	notifier    EngagementNotifier
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

// NewCommentService returns a new CommentService. notifier may be nil when
// comment notifications are disabled.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, notifier EngagementNotifier) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		notifier:    notifier,
	}
}

const maxCommentLen = 10000

// CreateComment adds a comment to a post and notifies the post's author.
// Commenting on your own post stores the comment without notifying.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxCommentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		PostID:  in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		// The actor == recipient guard lives in Notify.
		if _, err := s.notifier.Notify(ctx, post.UserID, in.UserID, models.VerbCommentedPost, models.TargetTypePost, post.ID); err != nil {
			return nil, err
		}
	}

	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID, limit, offset)
}

// DeleteComment removes a comment. The comment's author and the post's
// author may both delete it.
func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID, userID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
	}
	return s.commentRepo.Delete(ctx, commentID)
}
