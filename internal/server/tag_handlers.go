package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetTags handles GET /api/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagService.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if tags == nil {
		tags = []string{}
	}

	return c.JSON(fiber.Map{
		"tags": tags,
	})
}
