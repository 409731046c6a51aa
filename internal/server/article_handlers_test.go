package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"conduit/internal/config"
	"conduit/internal/models"
	"conduit/internal/repository"
	"conduit/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type testMocks struct {
	articles  *MockArticleRepository
	users     *MockUserRepository
	favorites *MockFavoriteRepository
	follows   *MockFollowRepository
	comments  *MockCommentRepository
	tags      *MockTagRepository
}

func newTestServer() (*Server, *testMocks) {
	m := &testMocks{
		articles:  new(MockArticleRepository),
		users:     new(MockUserRepository),
		favorites: new(MockFavoriteRepository),
		follows:   new(MockFollowRepository),
		comments:  new(MockCommentRepository),
		tags:      new(MockTagRepository),
	}

	s := &Server{
		config:       &config.Config{JWTSecret: "test-secret"},
		userRepo:     m.users,
		articleRepo:  m.articles,
		favoriteRepo: m.favorites,
		followRepo:   m.follows,
		commentRepo:  m.comments,
		tagRepo:      m.tags,
	}
	s.articleService = service.NewArticleService(m.articles, m.users, m.favorites, m.follows, m.tags)
	s.profileService = service.NewProfileService(m.users, m.follows)
	s.commentService = service.NewCommentService(m.comments, m.articles)
	s.tagService = service.NewTagService(m.tags)
	s.userService = service.NewUserService(m.users)

	return s, m
}

// asUser injects an authenticated viewer the way AuthRequired would.
func asUser(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decoding response body %q: %v", raw, err)
	}
	return body
}

func TestListArticles(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Get("/articles", s.ListArticles)

	m.articles.On("List", mock.Anything, mock.Anything).Return([]models.Article{
		{ID: 2, Slug: "second-x1y2z3", Title: "Second", Author: models.User{Username: "writer", Email: "w@example.com"}},
		{ID: 1, Slug: "first-a1b2c3", Title: "First", Author: models.User{Username: "writer", Email: "w@example.com"}},
	}, int64(2), nil)

	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["articlesCount"])

	articles := body["articles"].([]any)
	assert.Len(t, articles, 2)
	author := articles[0].(map[string]any)["author"].(map[string]any)
	assert.Equal(t, "writer", author["username"])
	_, hasEmail := author["email"]
	assert.False(t, hasEmail, "article author must not expose the email")
}

func TestListArticlesUnknownAuthor(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Get("/articles", s.ListArticles)

	m.users.On("GetByUsername", mock.Anything, "ghost").Return(nil, nil)
	m.articles.On("List", mock.Anything, mock.MatchedBy(func(q repository.ArticleQuery) bool {
		return q.MatchNone
	})).Return([]models.Article{}, int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/articles?author=ghost", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["articlesCount"])
	assert.Empty(t, body["articles"])
}

func TestGetFeedEmptyWithoutFollows(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Use(asUser(5))
	app.Get("/articles/feed", s.GetFeed)

	m.follows.On("FollowingIDs", mock.Anything, uint(5)).Return([]uint{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/articles/feed", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["articlesCount"])
	m.articles.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestGetArticleNotFound(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Get("/articles/:slug", s.GetArticle)

	m.articles.On("GetBySlug", mock.Anything, "missing").
		Return(nil, models.NewNotFoundError("Article", "missing"))

	req := httptest.NewRequest(http.MethodGet, "/articles/missing", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateArticleRequiresTitle(t *testing.T) {
	app := fiber.New()
	s, _ := newTestServer()
	app.Use(asUser(1))
	app.Post("/articles", s.CreateArticle)

	req := httptest.NewRequest(http.MethodPost, "/articles",
		jsonBody(`{"article":{"description":"no title","body":"text"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestFavoriteArticle(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Use(asUser(7))
	app.Post("/articles/:slug/favorite", s.FavoriteArticle)

	m.articles.On("GetBySlug", mock.Anything, "liked-a1b2c3").
		Return(&models.Article{ID: 4, Slug: "liked-a1b2c3", FavoritesCount: 1}, nil)
	m.favorites.On("Add", mock.Anything, uint(7), uint(4)).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/articles/liked-a1b2c3/favorite", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	article := body["article"].(map[string]any)
	assert.Equal(t, true, article["favorited"])
	assert.Equal(t, float64(1), article["favoritesCount"])
	m.favorites.AssertExpectations(t)
}

func TestDeleteArticleForbidden(t *testing.T) {
	app := fiber.New()
	s, m := newTestServer()
	app.Use(asUser(2))
	app.Delete("/articles/:slug", s.DeleteArticle)

	m.articles.On("GetBySlug", mock.Anything, "owned-a1b2c3").
		Return(&models.Article{ID: 9, Slug: "owned-a1b2c3", AuthorID: 1}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/articles/owned-a1b2c3", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	m.articles.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
