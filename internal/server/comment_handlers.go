package server

import (
	"conduit/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/articles/:slug/comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.List(c.Context(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"comments": shapeComments(comments),
	})
}

// AddComment handles POST /api/articles/:slug/comments
func (s *Server) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Comment struct {
			Body string `json:"body"`
		} `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Add(c.Context(), c.Params("slug"), userID, req.Comment.Body)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"comment": shapeComment(comment),
	})
}

// DeleteComment handles DELETE /api/articles/:slug/comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	commentID, err := c.ParamsInt("id")
	if err != nil || commentID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid comment ID"))
	}

	if err := s.commentService.Delete(c.Context(), c.Params("slug"), uint(commentID), userID); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
