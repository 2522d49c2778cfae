package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// CategoryService manages blog categories.
type CategoryService struct {
	categories repository.CategoryRepository
	pageSize   int
}

// NewCategoryService builds the service.
func NewCategoryService(categories repository.CategoryRepository, pageSize int) *CategoryService {
	return &CategoryService{categories: categories, pageSize: pageSize}
}

// CategoryList is one page of categories.
type CategoryList struct {
	Items       []domain.Category
	TotalPages  int
	CurrentPage int
}

// List returns one page of categories matching the search term.
func (s *CategoryService) List(ctx context.Context, page int, term string) (*CategoryList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.categories.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &CategoryList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create rejects a duplicate name under the same owner.
func (s *CategoryService) Create(ctx context.Context, owner *domain.Account, name, description string) (*domain.Category, error) {
	var ownerID *string
	if owner != nil {
		ownerID = &owner.ID
	}

	if _, err := s.categories.GetByNameAndOwner(ctx, name, ownerID); err == nil {
		return nil, apperrors.NewConflict("Category already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	category := &domain.Category{Name: name, Description: description, OwnerID: ownerID}
	if err := s.categories.Create(ctx, category); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("Category already exists")
		}
		return nil, err
	}
	return category, nil
}

// Update merges the provided fields into an existing category.
func (s *CategoryService) Update(ctx context.Context, id string, patch domain.CategoryPatch) error {
	if err := s.categories.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Category")
		}
		if repository.IsUniqueViolation(err) {
			return apperrors.NewConflict("Category already exists")
		}
		return err
	}
	return nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Category")
		}
		return err
	}
	return nil
}
