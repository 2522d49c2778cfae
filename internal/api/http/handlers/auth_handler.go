package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-office-service/internal/api/dto"
	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/service"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// AuthHandler exposes the login and logout endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(dto.LoginResponse{ErrorMessage: "invalid payload"})
	}
	if req.Email == "" {
		return c.Status(http.StatusBadRequest).JSON(dto.LoginResponse{
			EmailError:        true,
			EmailErrorMessage: "Invalid email",
		})
	}
	if req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(dto.LoginResponse{
			PasswordError:        true,
			PasswordErrorMessage: "Invalid password",
		})
	}

	remember := req.RememberMe == "true" || req.RememberMe == "on" || req.RememberMe == "1"
	result, err := h.auth.Login(c.Context(), req.Email, req.Password, remember)
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		return c.Status(http.StatusBadRequest).JSON(dto.LoginResponse{
			EmailError:        true,
			EmailErrorMessage: "Invalid email",
		})
	case errors.Is(err, service.ErrInvalidPassword):
		return c.Status(http.StatusBadRequest).JSON(dto.LoginResponse{
			PasswordError:        true,
			PasswordErrorMessage: "Invalid password",
		})
	case errors.Is(err, auth.ErrInvalidRole):
		return c.Status(http.StatusBadRequest).JSON(dto.LoginResponse{
			ErrorMessage: "Invalid role",
		})
	case err != nil:
		return apperrors.MapError(err)
	}

	c.Cookie(h.auth.Sessions().Cookie(result.Token, result.ExpiresAt))
	return c.JSON(dto.LoginResponse{
		Success:     true,
		RedirectURL: result.RedirectURL,
		User:        dto.NewAccountResponse(result.Account),
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessions := h.auth.Sessions()
	_ = h.auth.Logout(c.Context(), c.Cookies(sessions.CookieName()))
	c.Cookie(sessions.ClearingCookie())
	return c.JSON(fiber.Map{"success": true})
}
