package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
)

// Credential outcomes. The login handler maps these onto the field-level
// error flags the UI expects.
var (
	ErrInvalidEmail    = errors.New("Invalid email")
	ErrInvalidPassword = errors.New("Invalid password")
)

// AuthService coordinates the login and logout flows.
type AuthService struct {
	accounts repository.AccountRepository
	sessions *auth.SessionManager
}

// NewAuthService builds the service.
func NewAuthService(accounts repository.AccountRepository, sessions *auth.SessionManager) *AuthService {
	return &AuthService{accounts: accounts, sessions: sessions}
}

// LoginResult carries everything the login handler needs to answer.
type LoginResult struct {
	Account     *domain.Account
	RedirectURL string
	Token       string
	ExpiresAt   time.Time
}

// Login verifies credentials, resolves the role landing area and issues a
// session token.
func (s *AuthService) Login(ctx context.Context, email, password string, remember bool) (*LoginResult, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidEmail
		}
		return nil, err
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, ErrInvalidPassword
	}

	destination, err := auth.DestinationForRole(account.Role)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.sessions.Issue(account.Email, remember)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Account:     account,
		RedirectURL: destination,
		Token:       token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout revokes the presented session token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Sessions exposes the session manager for cookie handling and middleware.
func (s *AuthService) Sessions() *auth.SessionManager {
	return s.sessions
}
