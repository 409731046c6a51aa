package service

import (
	"context"

	"conduit/internal/models"
	"conduit/internal/observability"
	"conduit/internal/repository"
)

// ProfileService provides public profile views and follow management.
type ProfileService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewProfileService returns a new ProfileService.
func NewProfileService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, followRepo: followRepo}
}

// Get returns the named user's profile. viewerID 0 means anonymous, which
// always yields following=false.
func (s *ProfileService) Get(ctx context.Context, viewerID uint, username string) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("Profile", username)
	}

	following := false
	if viewerID != 0 {
		following, err = s.followRepo.IsFollowing(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	profile := user.Profile(following)
	return &profile, nil
}

// Follow makes the viewer follow the named user and returns the updated
// profile. Following an already-followed user is a no-op. Self-follow is
// rejected.
func (s *ProfileService) Follow(ctx context.Context, viewerID uint, username string) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("Profile", username)
	}
	if user.ID == viewerID {
		return nil, models.NewValidationError("You cannot follow yourself")
	}

	if err := s.followRepo.Follow(ctx, viewerID, user.ID); err != nil {
		return nil, err
	}
	observability.FollowToggles.WithLabelValues("follow").Inc()

	profile := user.Profile(true)
	return &profile, nil
}

// Unfollow makes the viewer unfollow the named user and returns the updated
// profile. Unfollowing a never-followed user is a no-op.
func (s *ProfileService) Unfollow(ctx context.Context, viewerID uint, username string) (*models.Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("Profile", username)
	}
	if user.ID == viewerID {
		return nil, models.NewValidationError("You cannot unfollow yourself")
	}

	if err := s.followRepo.Unfollow(ctx, viewerID, user.ID); err != nil {
		return nil, err
	}
	observability.FollowToggles.WithLabelValues("unfollow").Inc()

	profile := user.Profile(false)
	return &profile, nil
}
