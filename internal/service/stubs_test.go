package service

import (
	"context"

	"conduit/internal/models"
	"conduit/internal/repository"
)

type articleRepoStub struct {
	createFn    func(context.Context, *models.Article) error
	getBySlugFn func(context.Context, string) (*models.Article, error)
	updateFn    func(context.Context, *models.Article) error
	deleteFn    func(context.Context, uint) error
	listFn      func(context.Context, repository.ArticleQuery) ([]models.Article, int64, error)
}

func (s *articleRepoStub) Create(ctx context.Context, article *models.Article) error {
	return s.createFn(ctx, article)
}
func (s *articleRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *articleRepoStub) Update(ctx context.Context, article *models.Article) error {
	return s.updateFn(ctx, article)
}
func (s *articleRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *articleRepoStub) List(ctx context.Context, q repository.ArticleQuery) ([]models.Article, int64, error) {
	return s.listFn(ctx, q)
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

type favoriteRepoStub struct {
	isFavoritedFn         func(context.Context, uint, uint) (bool, error)
	addFn                 func(context.Context, uint, uint) error
	removeFn              func(context.Context, uint, uint) error
	favoritedArticleIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *favoriteRepoStub) IsFavorited(ctx context.Context, userID, articleID uint) (bool, error) {
	return s.isFavoritedFn(ctx, userID, articleID)
}
func (s *favoriteRepoStub) Add(ctx context.Context, userID, articleID uint) error {
	return s.addFn(ctx, userID, articleID)
}
func (s *favoriteRepoStub) Remove(ctx context.Context, userID, articleID uint) error {
	return s.removeFn(ctx, userID, articleID)
}
func (s *favoriteRepoStub) FavoritedArticleIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.favoritedArticleIDsFn(ctx, userID)
}

type followRepoStub struct {
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	followFn       func(context.Context, uint, uint) error
	unfollowFn     func(context.Context, uint, uint) error
	followingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) error {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, followerID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, followerID)
}

type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByArticleFn func(context.Context, uint) ([]models.Comment, error)
	deleteFn        func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByArticle(ctx context.Context, articleID uint) ([]models.Comment, error) {
	return s.listByArticleFn(ctx, articleID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

type tagRepoStub struct {
	listFn   func(context.Context) ([]string, error)
	upsertFn func(context.Context, []string) error
}

func (s *tagRepoStub) List(ctx context.Context) ([]string, error) {
	return s.listFn(ctx)
}
func (s *tagRepoStub) Upsert(ctx context.Context, names []string) error {
	return s.upsertFn(ctx, names)
}

func noopArticleRepo() *articleRepoStub {
	return &articleRepoStub{
		createFn: func(context.Context, *models.Article) error { return nil },
		getBySlugFn: func(context.Context, string) (*models.Article, error) {
			return &models.Article{}, nil
		},
		updateFn: func(context.Context, *models.Article) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		listFn: func(context.Context, repository.ArticleQuery) ([]models.Article, int64, error) {
			return []models.Article{}, 0, nil
		},
	}
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
	}
}

func noopFavoriteRepo() *favoriteRepoStub {
	return &favoriteRepoStub{
		isFavoritedFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		addFn:                 func(context.Context, uint, uint) error { return nil },
		removeFn:              func(context.Context, uint, uint) error { return nil },
		favoritedArticleIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		isFollowingFn:  func(context.Context, uint, uint) (bool, error) { return false, nil },
		followFn:       func(context.Context, uint, uint) error { return nil },
		unfollowFn:     func(context.Context, uint, uint) error { return nil },
		followingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:        func(context.Context, *models.Comment) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listByArticleFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		listFn:   func(context.Context) ([]string, error) { return nil, nil },
		upsertFn: func(context.Context, []string) error { return nil },
	}
}
