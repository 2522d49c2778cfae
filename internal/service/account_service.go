package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// AccountService manages the office user accounts.
type AccountService struct {
	accounts   repository.AccountRepository
	pageSize   int
	bcryptCost int
}

// NewAccountService builds the service.
func NewAccountService(accounts repository.AccountRepository, pageSize, bcryptCost int) *AccountService {
	return &AccountService{accounts: accounts, pageSize: pageSize, bcryptCost: bcryptCost}
}

// AccountCreateInput describes a new account.
type AccountCreateInput struct {
	Name         string
	Email        string
	Phone        string
	Password     string
	Role         domain.AccountRole
	DepartmentID *string
	Position     string
}

// AccountList is one page of accounts.
type AccountList struct {
	Items       []domain.Account
	TotalPages  int
	CurrentPage int
}

// List returns one page of accounts matching the search term.
func (s *AccountService) List(ctx context.Context, page int, term string) (*AccountList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.accounts.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &AccountList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create registers a new account; email and phone must be unused.
func (s *AccountService) Create(ctx context.Context, input AccountCreateInput) (*domain.Account, error) {
	if !domain.ValidRole(input.Role) {
		return nil, apperrors.NewValidationError("Invalid role")
	}

	if _, err := s.accounts.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("Email already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		Position:     input.Position,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewConflict("User already exists")
		}
		return nil, err
	}
	return account, nil
}

// Update merges the provided fields into an existing account. A non-nil
// newPassword is hashed and replaces the stored hash.
func (s *AccountService) Update(ctx context.Context, id string, patch domain.AccountPatch, newPassword *string) error {
	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return apperrors.NewValidationError("Invalid role")
	}
	if newPassword != nil {
		hash, err := auth.HashPassword(*newPassword, s.bcryptCost)
		if err != nil {
			return err
		}
		patch.PasswordHash = &hash
	}
	if err := s.accounts.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User")
		}
		if repository.IsUniqueViolation(err) {
			return apperrors.NewConflict("Email already exists")
		}
		return err
	}
	return nil
}

// Delete removes an account.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("User")
		}
		return err
	}
	return nil
}
