package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"conduit/internal/models"
	"conduit/internal/repository"

	"gorm.io/gorm"
)

// Options controls how much data the seeder creates.
type Options struct {
	Users    int
	Articles int
	// SkipBcrypt stores plaintext passwords for fast local seeding.
	SkipBcrypt bool
	// MaxDays bounds how far back article creation times are spread.
	MaxDays int
}

// Seeder populates the database with a connected social mesh: users who
// follow each other, articles with overlapping tags, favorites that keep
// the denormalized counters consistent, and the tag registry.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	rand    *rand.Rand
}

// NewSeeder creates a Seeder with the given options.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seedable data.
func (s *Seeder) ClearAll() error {
	for _, model := range []interface{}{
		&models.Favorite{}, &models.Comment{}, &models.Follow{},
		&models.Article{}, &models.Tag{}, &models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates n users and a follow mesh between them.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		users = append(users, user)
	}

	follows := repository.NewFollowRepository(s.db)
	ctx := context.Background()
	for _, follower := range users {
		// Each user follows roughly a third of the others.
		for _, other := range users {
			if other.ID == follower.ID || s.rand.Intn(3) != 0 {
				continue
			}
			if err := follows.Follow(ctx, follower.ID, other.ID); err != nil {
				return nil, fmt.Errorf("creating follow: %w", err)
			}
		}
	}

	log.Printf("Seeded %d users with follow mesh", len(users))
	return users, nil
}

// SeedArticles creates n articles spread across the given authors and
// registers their tags.
func (s *Seeder) SeedArticles(users []*models.User, n int) ([]*models.Article, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no authors to seed articles for")
	}

	articles := make([]*models.Article, 0, n)
	seen := map[string]struct{}{}
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		article := s.factory.BuildArticle(author)
		for _, tag := range article.TagList {
			seen[tag] = struct{}{}
		}
		articles = append(articles, article)
	}
	if err := s.factory.CreateArticlesBatch(articles); err != nil {
		return nil, fmt.Errorf("creating articles: %w", err)
	}

	names := make([]string, 0, len(seen))
	for tag := range seen {
		names = append(names, tag)
	}
	tags := repository.NewTagRepository(s.db)
	if err := tags.Upsert(context.Background(), names); err != nil {
		return nil, fmt.Errorf("registering tags: %w", err)
	}

	log.Printf("Seeded %d articles with %d distinct tags", len(articles), len(names))
	return articles, nil
}

// SeedEngagement scatters favorites over the articles. Going through the
// repository keeps the favorites counters consistent with the relation rows.
func (s *Seeder) SeedEngagement(users []*models.User, articles []*models.Article) error {
	favorites := repository.NewFavoriteRepository(s.db)
	ctx := context.Background()

	count := 0
	for _, user := range users {
		for _, article := range articles {
			if s.rand.Intn(4) != 0 {
				continue
			}
			if err := favorites.Add(ctx, user.ID, article.ID); err != nil {
				return fmt.Errorf("favoriting article: %w", err)
			}
			count++
		}
	}

	log.Printf("Seeded %d favorites", count)
	return nil
}

// Run executes the full seeding pass.
func (s *Seeder) Run() error {
	users, err := s.SeedUsers(s.factory.opts.Users)
	if err != nil {
		return err
	}
	articles, err := s.SeedArticles(users, s.factory.opts.Articles)
	if err != nil {
		return err
	}
	return s.SeedEngagement(users, articles)
}
