package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-office-service/internal/api/dto"
	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/service"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// CategoriesHandler exposes /api/categories.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categoryService *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categoryService}
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	result, err := h.categories.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Categories fetched successfully", fiber.Map{
		"categories":  dto.NewCategoryResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/categories, dispatching on the intent field.
func (h *CategoriesHandler) Mutate(c *fiber.Ctx) error {
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

func (h *CategoriesHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "name"); err != nil {
		return err
	}

	owner, _ := auth.AccountFromContext(c)
	category, err := h.categories.Create(c.Context(), owner, c.FormValue("name"), c.FormValue("description"))
	if err != nil {
		return err
	}

	categories := dto.NewCategoryResponses([]domain.Category{*category})
	return writeEnvelope(c, http.StatusCreated, "Category created successfully", categories[0])
}

func (h *CategoriesHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.CategoryPatch{
		Name:        formString(c, "name"),
		Description: formString(c, "description"),
	}
	if err := h.categories.Update(c.Context(), id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Category updated successfully", nil)
}

func (h *CategoriesHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.categories.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Category deleted successfully", nil)
}
