package service

import (
	"context"

	"conduit/internal/models"
	"conduit/internal/repository"
)

// CommentService manages comments attached to articles.
type CommentService struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, articleRepo repository.ArticleRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, articleRepo: articleRepo}
}

// Add attaches a new comment to the article identified by slug.
func (s *CommentService) Add(ctx context.Context, slug string, authorID uint, body string) (*models.Comment, error) {
	if body == "" {
		return nil, models.NewValidationError("Comment body is required")
	}

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:      body,
		ArticleID: article.ID,
		AuthorID:  authorID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// List returns the article's comments, newest first.
func (s *CommentService) List(ctx context.Context, slug string) ([]models.Comment, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.commentRepo.ListByArticle(ctx, article.ID)
}

// Delete removes the caller's comment from the article. A comment id that
// belongs to a different article is treated as not found.
func (s *CommentService) Delete(ctx context.Context, slug string, commentID, callerID uint) error {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.ArticleID != article.ID {
		return models.NewNotFoundError("Comment", commentID)
	}
	if comment.AuthorID != callerID {
		return models.NewForbiddenError("You are not the author of this comment")
	}

	return s.commentRepo.Delete(ctx, comment.ID)
}
