package service

import (
	"context"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

type TagService struct {
	tags ports.TagRepository
}

func NewTagService(tags ports.TagRepository) *TagService {
	return &TagService{tags: tags}
}

func (s *TagService) Create(ctx context.Context, ownerID int64, name string) (*domain.Tag, error) {
	patch := new(ports.Patch).
		Set("name", name).
		Set("userID", ownerID)
	return s.tags.Create(ctx, patch)
}

func (s *TagService) ListForUser(ctx context.Context, ownerID int64) ([]domain.Tag, error) {
	return s.tags.FindByOwner(ctx, ownerID)
}

func (s *TagService) Delete(ctx context.Context, tagID int64) (bool, error) {
	return s.tags.Delete(ctx, tagID)
}
