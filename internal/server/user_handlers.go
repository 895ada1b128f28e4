package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 20)

	users, err := s.userService.ListUsers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Bio    *string `json:"bio"`
		Avatar *string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID: userID,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)
	currentUserID := c.Locals("userID").(uint)

	if _, err := s.userService.GetUser(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}

	posts, err := s.postService.ListPostsByUser(c.Context(), id, page.Limit, page.Offset, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
