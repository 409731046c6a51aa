package server

import (
	"strings"

	"conduit/internal/models"
	"conduit/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser handles GET /api/user
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.Get(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	token := bearerToken(c)
	return c.JSON(fiber.Map{
		"user": s.shapeUser(user, token),
	})
}

// UpdateCurrentUser handles PUT /api/user
func (s *Server) UpdateCurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		User struct {
			Username *string `json:"username"`
			Email    *string `json:"email"`
			Password *string `json:"password"`
			Bio      *string `json:"bio"`
			Image    *string `json:"image"`
		} `json:"user"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Update(c.Context(), service.UpdateUserInput{
		UserID:   userID,
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: req.User.Password,
		Bio:      req.User.Bio,
		Image:    req.User.Image,
	})
	if err != nil {
		return respondError(c, err)
	}

	token := bearerToken(c)
	return c.JSON(fiber.Map{
		"user": s.shapeUser(user, token),
	})
}

// bearerToken echoes the caller's own token back in user responses.
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
