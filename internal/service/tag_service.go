package service

import (
	"context"

	"conduit/internal/repository"
)

// TagService exposes the global tag registry.
type TagService struct {
	tagRepo repository.TagRepository
}

// NewTagService returns a new TagService.
func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// List returns every known tag name, alphabetically.
func (s *TagService) List(ctx context.Context) ([]string, error) {
	return s.tagRepo.List(ctx)
}
