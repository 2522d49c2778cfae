package auth

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/legal-office-service/internal/config"
)

const denylistPrefix = "session:revoked:"

// SessionManager issues and reads the signed token carried in the session
// cookie. Logged-out tokens are denylisted in Redis until they expire on
// their own.
type SessionManager struct {
	secret     []byte
	cfg        config.SessionConfig
	denylist   *redis.Client
	logger     *zap.Logger
	cookiePath string
}

// SessionClaims is the payload embedded in the session cookie.
type SessionClaims struct {
	Email    string `json:"email"`
	Remember bool   `json:"remember,omitempty"`
	jwt.RegisteredClaims
}

// NewSessionManager builds a manager. The denylist client may be nil; logout
// then only clears the cookie.
func NewSessionManager(cfg config.SessionConfig, denylist *redis.Client, logger *zap.Logger) *SessionManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		secret:     []byte(cfg.Secret),
		cfg:        cfg,
		denylist:   denylist,
		logger:     logger,
		cookiePath: "/",
	}
}

// Issue signs a session token for the identity claim. The expiry is long when
// remember is set and short otherwise.
func (sm *SessionManager) Issue(email string, remember bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(sm.cfg.TTL(remember))
	claims := &SessionClaims{
		Email:    email,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(sm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Read returns the email claim for a cookie value, or "" when the token is
// absent, malformed, expired or denylisted. It never fails the request.
func (sm *SessionManager) Read(ctx context.Context, tokenStr string) string {
	claims, err := sm.parse(tokenStr)
	if err != nil {
		return ""
	}
	if sm.revoked(ctx, claims.ID) {
		return ""
	}
	return claims.Email
}

// Destroy denylists the token until its natural expiry.
func (sm *SessionManager) Destroy(ctx context.Context, tokenStr string) error {
	claims, err := sm.parse(tokenStr)
	if err != nil {
		// nothing to revoke
		return nil
	}
	if sm.denylist == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return sm.denylist.Set(ctx, denylistPrefix+claims.ID, "1", ttl).Err()
}

// Cookie builds the Set-Cookie carrier for an issued token.
func (sm *SessionManager) Cookie(token string, expiresAt time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     sm.cfg.CookieName,
		Value:    token,
		Path:     sm.cookiePath,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   sm.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ClearingCookie builds the cookie directive that removes the session.
func (sm *SessionManager) ClearingCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     sm.cfg.CookieName,
		Value:    "",
		Path:     sm.cookiePath,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   sm.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// CookieName exposes the configured cookie name for handlers.
func (sm *SessionManager) CookieName() string {
	return sm.cfg.CookieName
}

func (sm *SessionManager) parse(tokenStr string) (*SessionClaims, error) {
	if tokenStr == "" {
		return nil, errors.New("empty token")
	}
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return sm.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

func (sm *SessionManager) revoked(ctx context.Context, id string) bool {
	if sm.denylist == nil || id == "" {
		return false
	}
	n, err := sm.denylist.Exists(ctx, denylistPrefix+id).Result()
	if err != nil {
		// an unreachable denylist reads as anonymous rather than failing the request
		sm.logger.Warn("session denylist check failed", zap.Error(err))
		return true
	}
	return n > 0
}
