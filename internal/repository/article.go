package repository

import (
	"context"
	"errors"

	"conduit/internal/models"
	"conduit/internal/observability"

	"gorm.io/gorm"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q ArticleQuery) ([]models.Article, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository returns a new ArticleRepository implementation.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("An article with this slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ?", slug).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Article", slug)
		}
		return nil, models.NewInternalError(err)
	}
	return &article, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Save(article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("An article with this slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the article together with its favorite and comment rows.
// Dropping the favorites in the same transaction keeps the favorites-count
// invariant meaningful after deletion.
func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// List executes the query and returns the page of matching articles plus the
// total count of the filtered set, counted before the page window applies.
func (r *articleRepository) List(ctx context.Context, q ArticleQuery) ([]models.Article, int64, error) {
	if q.MatchNone {
		return []models.Article{}, 0, nil
	}

	defer observability.TrackQuery("list", "articles")()

	var total int64
	if err := q.apply(r.db.WithContext(ctx).Model(&models.Article{})).
		Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	articles := []models.Article{}
	page := q.page(q.apply(r.db.WithContext(ctx).Model(&models.Article{}))).
		Preload("Author").
		Order("created_at DESC, id DESC")
	if err := page.Find(&articles).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	return articles, total, nil
}
