package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

type UpdateProfileInput struct {
	UserID uint
	Bio    *string
	Avatar *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetUser returns the user with profile and follow counts.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetWithStats(ctx, id)
}

const maxBioLen = 500

// UpdateProfile updates the caller's own profile. Nil fields are left
// untouched; usernames and emails are fixed at signup.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	if in.Bio != nil && len(*in.Bio) > maxBioLen {
		return nil, models.NewValidationError("Bio too long (max 500 characters)")
	}

	if err := s.userRepo.UpdateProfile(ctx, in.UserID, in.Bio, in.Avatar); err != nil {
		return nil, err
	}
	return s.userRepo.GetWithStats(ctx, in.UserID)
}
