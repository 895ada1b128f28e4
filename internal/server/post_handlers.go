package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)

	posts, err := s.postService.ListPosts(c.Context(), page.Limit, page.Offset, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	post, gerr := s.postService.GetPost(c.Context(), id, userID)
	if gerr != nil {
		return respondServiceError(c, gerr)
	}
	return c.JSON(post)
}

// SearchPosts handles GET /api/posts/search
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	page := parsePagination(c, 20)
	userID, _ := s.optionalUserID(c)
	query := c.Query("q")

	posts, err := s.postService.SearchPosts(c.Context(), query, page.Limit, page.Offset, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, uerr := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:  userID,
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
	})
	if uerr != nil {
		return respondServiceError(c, uerr)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if derr := s.postService.DeletePost(c.Context(), userID, postID); derr != nil {
		return respondServiceError(c, derr)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// LikePost handles POST /api/posts/:id/like. A fresh like answers 201; a
// repeated like answers 200 and changes nothing.
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, lerr := s.engagementService.Like(c.Context(), userID, postID)
	if lerr != nil {
		return respondServiceError(c, lerr)
	}

	if !result.Created {
		return c.JSON(fiber.Map{"message": "Already liked"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Post liked"})
}

// UnlikePost handles POST /api/posts/:id/unlike (and its DELETE alias).
// Both outcomes answer 200; the message says whether a like was removed.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	removed, uerr := s.engagementService.Unlike(c.Context(), userID, postID)
	if uerr != nil {
		return respondServiceError(c, uerr)
	}

	if !removed {
		return c.JSON(fiber.Map{"message": "No like to remove"})
	}
	return c.JSON(fiber.Map{"message": "Like removed"})
}
