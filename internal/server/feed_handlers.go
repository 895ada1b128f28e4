package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed: posts authored by users the caller
// follows, newest first. A caller following nobody gets an empty list.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	posts, err := s.engagementService.Feed(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(posts)
}
