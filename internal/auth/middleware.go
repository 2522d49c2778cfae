package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

const accountKey = "session_account"

// SessionMiddleware reads the session cookie and loads the account behind it.
type SessionMiddleware struct {
	sessions *SessionManager
	accounts repository.AccountRepository
}

// NewSessionMiddleware constructs middleware.
func NewSessionMiddleware(sessions *SessionManager, accounts repository.AccountRepository) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, accounts: accounts}
}

// Handle enforces authentication for protected routes. The account is
// re-fetched by the email claim on every request.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	email := m.sessions.Read(c.Context(), c.Cookies(m.sessions.CookieName()))
	if email == "" {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	account, err := m.accounts.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("Unauthorized")
		}
		return apperrors.MapError(err)
	}

	c.Locals(accountKey, account)
	return c.Next()
}

// HandleOptional loads the account when a valid session cookie is present
// but never rejects the request. Public intake routes use it so that a
// signed-in visitor is still attributed.
func (m *SessionMiddleware) HandleOptional(c *fiber.Ctx) error {
	email := m.sessions.Read(c.Context(), c.Cookies(m.sessions.CookieName()))
	if email == "" {
		return c.Next()
	}

	account, err := m.accounts.GetByEmail(c.Context(), email)
	if err == nil {
		c.Locals(accountKey, account)
	}
	return c.Next()
}

// AccountFromContext retrieves the authenticated account.
func AccountFromContext(c *fiber.Ctx) (*domain.Account, bool) {
	val := c.Locals(accountKey)
	if val == nil {
		return nil, false
	}
	account, ok := val.(*domain.Account)
	return account, ok
}

// RequireRole ensures the session account has one of the allowed roles.
func RequireRole(allowed ...domain.AccountRole) fiber.Handler {
	allowedSet := make(map[domain.AccountRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		account, ok := AccountFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("Unauthorized")
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[account.Role]; !exists {
			return apperrors.NewDomainError("FORBIDDEN", "Forbidden", fiber.StatusForbidden)
		}
		return c.Next()
	}
}
