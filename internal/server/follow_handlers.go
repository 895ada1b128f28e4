package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow. Repeating an existing
// follow is acknowledged without creating a second edge or notification.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, ferr := s.followService.Follow(c.Context(), userID, targetID)
	if ferr != nil {
		return respondServiceError(c, ferr)
	}

	message := "Now following " + result.Target.Username
	status := fiber.StatusCreated
	if !result.Changed {
		message = "Already following " + result.Target.Username
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// UnfollowUser handles POST /api/users/:id/unfollow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, uerr := s.followService.Unfollow(c.Context(), userID, targetID)
	if uerr != nil {
		return respondServiceError(c, uerr)
	}

	message := "Unfollowed " + result.Target.Username
	if !result.Changed {
		message = "Not following " + result.Target.Username
	}
	return c.JSON(fiber.Map{"message": message})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	users, lerr := s.followService.ListFollowers(c.Context(), id, page.Limit, page.Offset)
	if lerr != nil {
		return respondServiceError(c, lerr)
	}
	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 20)

	users, lerr := s.followService.ListFollowing(c.Context(), id, page.Limit, page.Offset)
	if lerr != nil {
		return respondServiceError(c, lerr)
	}
	return c.JSON(users)
}
