package server

import (
	"time"

	"conduit/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit   = 20
	maxPaginationLimit = 100
)

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

// parsePagination extracts limit and offset query parameters.
func parsePagination(c *fiber.Ctx) Pagination {
	limit := c.QueryInt("limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{Limit: limit, Offset: offset}
}

// currentUserID returns the authenticated user's id, or 0 for anonymous
// requests that passed through AuthOptional.
func currentUserID(c *fiber.Ctx) uint {
	if userID, ok := c.Locals("userID").(uint); ok {
		return userID
	}
	return 0
}

// respondError writes the error with the status its code maps to.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// articleBody is the wire shape of an article. The author appears as a
// public profile, never as the full user record.
type articleBody struct {
	Slug           string         `json:"slug"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Body           string         `json:"body"`
	TagList        models.TagList `json:"tagList"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Favorited      bool           `json:"favorited"`
	FavoritesCount int            `json:"favoritesCount"`
	Author         models.Profile `json:"author"`
}

func shapeArticle(article *models.Article) articleBody {
	return articleBody{
		Slug:           article.Slug,
		Title:          article.Title,
		Description:    article.Description,
		Body:           article.Body,
		TagList:        article.TagList,
		CreatedAt:      article.CreatedAt,
		UpdatedAt:      article.UpdatedAt,
		Favorited:      article.Favorited,
		FavoritesCount: article.FavoritesCount,
		Author:         article.Author.Profile(false),
	}
}

func shapeArticles(articles []models.Article) []articleBody {
	shaped := make([]articleBody, 0, len(articles))
	for i := range articles {
		shaped = append(shaped, shapeArticle(&articles[i]))
	}
	return shaped
}

// commentBody is the wire shape of a comment.
type commentBody struct {
	ID        uint           `json:"id"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Author    models.Profile `json:"author"`
}

func shapeComment(comment *models.Comment) commentBody {
	return commentBody{
		ID:        comment.ID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Author:    comment.Author.Profile(false),
	}
}

func shapeComments(comments []models.Comment) []commentBody {
	shaped := make([]commentBody, 0, len(comments))
	for i := range comments {
		shaped = append(shaped, shapeComment(&comments[i]))
	}
	return shaped
}
