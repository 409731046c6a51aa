// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"context"

	"conduit/internal/models"
	"conduit/internal/observability"
	"conduit/internal/repository"
	"conduit/internal/slugify"
)

// ArticleService provides article listing, feed aggregation, publishing, and
// favorite toggling.
type ArticleService struct {
	articleRepo  repository.ArticleRepository
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
	followRepo   repository.FollowRepository
	tagRepo      repository.TagRepository
}

// ListArticlesInput holds the optional listing filters and page window.
// Author and Favorited are usernames, resolved here.
type ListArticlesInput struct {
	Tag       string
	Author    string
	Favorited string
	Limit     int
	Offset    int
}

// CreateArticleInput holds the fields of a new article.
type CreateArticleInput struct {
	AuthorID    uint
	Title       string
	Description string
	Body        string
	TagList     []string
}

// UpdateArticleInput holds the partial fields of an article edit. Nil fields
// are left untouched; a provided title regenerates the slug.
type UpdateArticleInput struct {
	Slug        string
	CallerID    uint
	Title       *string
	Description *string
	Body        *string
}

// NewArticleService returns a new ArticleService.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	favoriteRepo repository.FavoriteRepository,
	followRepo repository.FollowRepository,
	tagRepo repository.TagRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo:  articleRepo,
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		followRepo:   followRepo,
		tagRepo:      tagRepo,
	}
}

// List returns the filtered article page and the total count of the filtered
// set. viewerID 0 means anonymous; a known viewer gets the favorited flag
// overlaid on each result.
//
// An unknown author or favorited username resolves to the empty result, not
// an error, and an empty favorites set restricts to zero rows rather than
// dropping the filter.
func (s *ArticleService) List(ctx context.Context, viewerID uint, in ListArticlesInput) ([]models.Article, int64, error) {
	q := repository.ArticleQuery{
		Tag:    in.Tag,
		Limit:  in.Limit,
		Offset: in.Offset,
	}

	if in.Author != "" {
		author, err := s.userRepo.GetByUsername(ctx, in.Author)
		if err != nil {
			return nil, 0, err
		}
		if author == nil {
			q.MatchNone = true
		} else {
			q.AuthorIDs = []uint{author.ID}
		}
	}

	if !q.MatchNone && in.Favorited != "" {
		user, err := s.userRepo.GetByUsername(ctx, in.Favorited)
		if err != nil {
			return nil, 0, err
		}
		if user == nil {
			q.MatchNone = true
		} else {
			ids, err := s.favoriteRepo.FavoritedArticleIDs(ctx, user.ID)
			if err != nil {
				return nil, 0, err
			}
			if len(ids) == 0 {
				q.MatchNone = true
			} else {
				q.ArticleIDs = ids
			}
		}
	}

	articles, total, err := s.articleRepo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if err := s.overlayFavorited(ctx, viewerID, articles); err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// Feed returns the viewer's personalized feed: articles by followed authors,
// newest first, with the same count/pagination contract as List. A viewer
// following nobody gets an empty page without any article query. Feed
// entries carry no viewer-relative favorited flag.
func (s *ArticleService) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]models.Article, int64, error) {
	followingIDs, err := s.followRepo.FollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if len(followingIDs) == 0 {
		return []models.Article{}, 0, nil
	}

	return s.articleRepo.List(ctx, repository.ArticleQuery{
		AuthorIDs: followingIDs,
		Limit:     limit,
		Offset:    offset,
	})
}

// Create publishes a new article for the authenticated author.
func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (*models.Article, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}

	tagList := models.TagList(in.TagList)
	if tagList == nil {
		tagList = models.TagList{}
	}

	article := &models.Article{
		Slug:        slugify.Make(in.Title),
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
		TagList:     tagList,
		AuthorID:    in.AuthorID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	if err := s.tagRepo.Upsert(ctx, tagList); err != nil {
		return nil, err
	}

	observability.ArticlesPublished.Inc()

	// Reload to attach the author for response shaping.
	return s.articleRepo.GetBySlug(ctx, article.Slug)
}

// GetBySlug returns the article with its author, or NotFound.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.articleRepo.GetBySlug(ctx, slug)
}

// Update merges the provided fields into the caller's article. A provided
// title regenerates the slug, so the old slug stops resolving.
func (s *ArticleService) Update(ctx context.Context, in UpdateArticleInput) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if article.AuthorID != in.CallerID {
		return nil, models.NewForbiddenError("You are not the author of this article")
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		article.Title = *in.Title
		article.Slug = slugify.Make(*in.Title)
	}
	if in.Description != nil {
		article.Description = *in.Description
	}
	if in.Body != nil {
		article.Body = *in.Body
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetBySlug(ctx, article.Slug)
}

// Delete removes the caller's article.
func (s *ArticleService) Delete(ctx context.Context, slug string, callerID uint) error {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if article.AuthorID != callerID {
		return models.NewForbiddenError("You are not the author of this article")
	}
	return s.articleRepo.Delete(ctx, article.ID)
}

// Favorite marks the article as favorited by the caller and returns the
// refreshed article. Favoriting an already-favorited article is a no-op.
func (s *ArticleService) Favorite(ctx context.Context, slug string, callerID uint) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Add(ctx, callerID, article.ID); err != nil {
		return nil, err
	}
	observability.FavoriteToggles.WithLabelValues("favorite").Inc()

	refreshed, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	refreshed.Favorited = true
	return refreshed, nil
}

// Unfavorite removes the caller's favorite mark and returns the refreshed
// article. Unfavoriting a never-favorited article is a no-op.
func (s *ArticleService) Unfavorite(ctx context.Context, slug string, callerID uint) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Remove(ctx, callerID, article.ID); err != nil {
		return nil, err
	}
	observability.FavoriteToggles.WithLabelValues("unfavorite").Inc()

	refreshed, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	refreshed.Favorited = false
	return refreshed, nil
}

func (s *ArticleService) overlayFavorited(ctx context.Context, viewerID uint, articles []models.Article) error {
	if viewerID == 0 || len(articles) == 0 {
		return nil
	}
	ids, err := s.favoriteRepo.FavoritedArticleIDs(ctx, viewerID)
	if err != nil {
		return err
	}
	favorited := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		favorited[id] = struct{}{}
	}
	for i := range articles {
		_, ok := favorited[articles[i].ID]
		articles[i].Favorited = ok
	}
	return nil
}
