package service

import (
	"context"

	"github.com/taskmate/taskmate-api/internal/core/domain"
	"github.com/taskmate/taskmate-api/internal/core/ports"
)

type CategoryService struct {
	categories ports.CategoryRepository
}

func NewCategoryService(categories ports.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, ownerID int64, name, color string) (*domain.Category, error) {
	patch := new(ports.Patch).
		Set("name", name).
		Set("color", color).
		Set("userID", ownerID)
	return s.categories.Create(ctx, patch)
}

func (s *CategoryService) ListForUser(ctx context.Context, ownerID int64) ([]domain.Category, error) {
	return s.categories.FindByOwner(ctx, ownerID)
}

func (s *CategoryService) Update(ctx context.Context, categoryID int64, in ports.UpdateCategoryInput) (*domain.Category, error) {
	patch := new(ports.Patch)
	if in.Name != nil {
		patch.Set("name", *in.Name)
	}
	if in.Color != nil {
		patch.Set("color", *in.Color)
	}

	category, err := s.categories.Update(ctx, categoryID, patch)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, categoryID int64) (bool, error) {
	return s.categories.Delete(ctx, categoryID)
}
