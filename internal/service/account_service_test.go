package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/legal-office-service/internal/domain"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

func TestAccountCreate(t *testing.T) {
	repo := newMockAccountRepository()
	svc := NewAccountService(repo, 10, bcrypt.MinCost)

	account, err := svc.Create(context.Background(), AccountCreateInput{
		Name:     "Pat Clerk",
		Email:    "clerk@office.example",
		Password: "s3cret-pass",
		Role:     domain.RoleStaff,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "clerk@office.example", account.Email)
	assert.NotEqual(t, "s3cret-pass", account.PasswordHash)
}

func TestAccountCreateRejectsInvalidRole(t *testing.T) {
	repo := newMockAccountRepository()
	svc := NewAccountService(repo, 10, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), AccountCreateInput{
		Name:     "Pat Clerk",
		Email:    "clerk@office.example",
		Password: "s3cret-pass",
		Role:     domain.AccountRole("intern"),
	})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Empty(t, repo.created)
}

func TestAccountCreateDuplicateEmail(t *testing.T) {
	repo := newMockAccountRepository()
	seedAccount(t, repo, "clerk@office.example", "whatever", domain.RoleStaff)
	svc := NewAccountService(repo, 10, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), AccountCreateInput{
		Name:     "Second Clerk",
		Email:    "clerk@office.example",
		Password: "s3cret-pass",
		Role:     domain.RoleStaff,
	})
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Email already exists", domainErr.Message)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	assert.Empty(t, repo.created)
}

func TestAccountUpdateHashesNewPassword(t *testing.T) {
	repo := newMockAccountRepository()
	seedAccount(t, repo, "clerk@office.example", "old-pass", domain.RoleStaff)
	svc := NewAccountService(repo, 10, bcrypt.MinCost)

	newPassword := "new-pass"
	err := svc.Update(context.Background(), "acc-1", domain.AccountPatch{}, &newPassword)
	assert.NoError(t, err)
}

func TestAccountUpdateMissing(t *testing.T) {
	repo := newMockAccountRepository()
	svc := NewAccountService(repo, 10, bcrypt.MinCost)

	err := svc.Update(context.Background(), "missing", domain.AccountPatch{}, nil)
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
	assert.Equal(t, "User not found", domainErr.Message)
}

func TestAccountDeleteTwice(t *testing.T) {
	repo := newMockAccountRepository()
	seedAccount(t, repo, "clerk@office.example", "whatever", domain.RoleStaff)
	svc := NewAccountService(repo, 10, bcrypt.MinCost)

	require.NoError(t, svc.Delete(context.Background(), "acc-1"))

	err := svc.Delete(context.Background(), "acc-1")
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}

func TestAccountListPaging(t *testing.T) {
	repo := newMockAccountRepository()
	repo.listItems = []domain.Account{{ID: "acc-1"}, {ID: "acc-2"}}
	repo.listTotal = 25
	svc := NewAccountService(repo, 10, bcrypt.MinCost)

	result, err := svc.List(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, 1, result.CurrentPage)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Items, 2)
}
