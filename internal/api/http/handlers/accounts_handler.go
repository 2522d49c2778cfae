package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-office-service/internal/api/dto"
	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/service"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// AccountsHandler exposes /api/users.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// List handles GET /api/users.
func (h *AccountsHandler) List(c *fiber.Ctx) error {
	result, err := h.accounts.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Users fetched successfully", fiber.Map{
		"users":       dto.NewAccountResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/users, dispatching on the intent field.
func (h *AccountsHandler) Mutate(c *fiber.Ctx) error {
	switch c.FormValue("intent") {
	case "create":
		return h.create(c)
	case "update":
		return h.update(c)
	case "delete":
		return h.delete(c)
	default:
		return apperrors.NewInvalidIntent()
	}
}

func (h *AccountsHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "name", "email", "password", "role"); err != nil {
		return err
	}

	account, err := h.accounts.Create(c.Context(), service.AccountCreateInput{
		Name:         c.FormValue("name"),
		Email:        c.FormValue("email"),
		Phone:        c.FormValue("phone"),
		Password:     c.FormValue("password"),
		Role:         domain.AccountRole(c.FormValue("role")),
		DepartmentID: optionalID(c, "departmentId"),
		Position:     c.FormValue("position"),
	})
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusCreated, "User created successfully", dto.NewAccountResponse(account))
}

func (h *AccountsHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.AccountPatch{
		Name:         formString(c, "name"),
		Email:        formString(c, "email"),
		Phone:        formString(c, "phone"),
		DepartmentID: optionalID(c, "departmentId"),
		Position:     formString(c, "position"),
	}
	if role := formString(c, "role"); role != nil {
		accountRole := domain.AccountRole(*role)
		patch.Role = &accountRole
	}

	if err := h.accounts.Update(c.Context(), id, patch, formString(c, "password")); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "User updated successfully", nil)
}

func (h *AccountsHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.accounts.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "User deleted successfully", nil)
}
