package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/config"
	"github.com/spec-kit/legal-office-service/internal/domain"
)

func testSessions(t *testing.T) *auth.SessionManager {
	t.Helper()
	return auth.NewSessionManager(config.SessionConfig{
		Secret:           "unit-test-secret",
		CookieName:       "office_session",
		TTLMinutes:       60,
		RememberTTLHours: 720,
	}, nil, nil)
}

func seedAccount(t *testing.T, repo *mockAccountRepository, email, password string, role domain.AccountRole) *domain.Account {
	t.Helper()
	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	account := &domain.Account{
		ID:           "acc-1",
		Name:         "Pat Clerk",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	repo.byEmail[email] = account
	repo.byID[account.ID] = account
	return account
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newMockAccountRepository()
	svc := NewAuthService(repo, testSessions(t))

	result, err := svc.Login(context.Background(), "nobody@office.example", "whatever", false)
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Nil(t, result)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMockAccountRepository()
	seedAccount(t, repo, "clerk@office.example", "right-pass", domain.RoleStaff)
	svc := NewAuthService(repo, testSessions(t))

	result, err := svc.Login(context.Background(), "clerk@office.example", "wrong-pass", false)
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Nil(t, result)
}

func TestLoginRedirectsByRole(t *testing.T) {
	tests := []struct {
		role domain.AccountRole
		want string
	}{
		{domain.RoleAdmin, "/admin"},
		{domain.RoleDepartmentHead, "/department"},
		{domain.RoleManager, "/manager"},
		{domain.RoleStaff, "/staff"},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			repo := newMockAccountRepository()
			seedAccount(t, repo, "clerk@office.example", "right-pass", tt.role)
			sessions := testSessions(t)
			svc := NewAuthService(repo, sessions)

			result, err := svc.Login(context.Background(), "clerk@office.example", "right-pass", false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.RedirectURL)
			assert.NotEmpty(t, result.Token)
			assert.Equal(t, "clerk@office.example",
				sessions.Read(context.Background(), result.Token))
		})
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	repo := newMockAccountRepository()
	seedAccount(t, repo, "clerk@office.example", "right-pass", domain.AccountRole("intern"))
	svc := NewAuthService(repo, testSessions(t))

	result, err := svc.Login(context.Background(), "clerk@office.example", "right-pass", false)
	assert.ErrorIs(t, err, auth.ErrInvalidRole)
	assert.Nil(t, result)
}
