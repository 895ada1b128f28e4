package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

const (
	maxTitleLen   = 300
	maxContentLen = 50000
)

func validatePostFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 50000 characters)")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Title, in.Content); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id, currentUserID)
}

func (s *PostService) ListPosts(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.List(ctx, limit, offset, currentUserID)
}

func (s *PostService) ListPostsByUser(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *PostService) SearchPosts(ctx context.Context, query string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.postRepo.Search(ctx, query, limit, offset, currentUserID)
}

// UpdatePost edits a post's title and content. Only the author may edit;
// authorship itself never changes.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own posts")
	}
	if err := validatePostFields(in.Title, in.Content); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
