package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// DepartmentService manages office departments.
type DepartmentService struct {
	departments repository.DepartmentRepository
	pageSize    int
}

// NewDepartmentService builds the service.
func NewDepartmentService(departments repository.DepartmentRepository, pageSize int) *DepartmentService {
	return &DepartmentService{departments: departments, pageSize: pageSize}
}

// DepartmentList is one page of departments.
type DepartmentList struct {
	Items       []domain.Department
	TotalPages  int
	CurrentPage int
}

// List returns one page of departments matching the search term.
func (s *DepartmentService) List(ctx context.Context, page int, term string) (*DepartmentList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.departments.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &DepartmentList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create rejects a duplicate name under the same owner. The uniqueness check
// races with a concurrent identical submission; the unique index backs it up.
func (s *DepartmentService) Create(ctx context.Context, owner *domain.Account, name, description, headName string) (*domain.Department, error) {
	var ownerID *string
	if owner != nil {
		ownerID = &owner.ID
	}

	if _, err := s.departments.GetByNameAndOwner(ctx, name, ownerID); err == nil {
		return nil, apperrors.NewConflict("Department already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	dept := &domain.Department{Name: name, Description: description, OwnerID: ownerID, HeadName: headName}
	if err := s.departments.Create(ctx, dept); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("Department already exists")
		}
		return nil, err
	}
	return dept, nil
}

// Update merges the provided fields into an existing department.
func (s *DepartmentService) Update(ctx context.Context, id string, patch domain.DepartmentPatch) error {
	if err := s.departments.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Department")
		}
		if repository.IsUniqueViolation(err) {
			return apperrors.NewConflict("Department already exists")
		}
		return err
	}
	return nil
}

// Delete removes a department.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Department")
		}
		return err
	}
	return nil
}
