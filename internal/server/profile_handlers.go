package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/profiles/:username
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.Get(c.Context(), currentUserID(c), c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

// FollowUser handles POST /api/profiles/:username/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileService.Follow(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}

// UnfollowUser handles DELETE /api/profiles/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	profile, err := s.profileService.Unfollow(c.Context(), userID, c.Params("username"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"profile": profile,
	})
}
