// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"conduit/internal/models"
	"conduit/internal/slugify"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tagPool is the vocabulary articles draw their tags from, so the seeded
// corpus has overlapping tags worth filtering on.
var tagPool = []string{
	"go", "dragons", "coffee", "writing", "travel",
	"music", "cooking", "programming", "books", "photography",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Image:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildArticle constructs an article for the given author without
// persisting it. Useful for batching.
func (f *Factory) BuildArticle(author *models.User, overrides ...func(*models.Article)) *models.Article {
	title := gofakeit.Sentence(f.rand.Intn(4) + 3)
	title = strings.TrimSuffix(title, ".")

	article := &models.Article{
		Slug:        slugify.Make(title),
		Title:       title,
		Description: gofakeit.Sentence(12),
		Body:        gofakeit.Paragraph(2, 4, 8, "\n\n"),
		TagList:     f.randomTags(),
		AuthorID:    author.ID,
	}

	// Spread creation times so listings have a meaningful order.
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	article.CreatedAt = time.Now().
		Add(-time.Duration(f.rand.Intn(maxDays)) * 24 * time.Hour).
		Add(-time.Duration(f.rand.Intn(24)) * time.Hour)

	for _, override := range overrides {
		override(article)
	}
	return article
}

// CreateArticlesBatch persists multiple articles in a single DB call.
func (f *Factory) CreateArticlesBatch(articles []*models.Article) error {
	if len(articles) == 0 {
		return nil
	}
	return f.db.Create(&articles).Error
}

func (f *Factory) randomTags() models.TagList {
	count := f.rand.Intn(4)
	if count == 0 {
		return models.TagList{}
	}
	picked := make(models.TagList, 0, count)
	for _, i := range f.rand.Perm(len(tagPool))[:count] {
		picked = append(picked, tagPool[i])
	}
	return picked
}
