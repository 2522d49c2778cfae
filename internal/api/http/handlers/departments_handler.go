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

// DepartmentsHandler exposes /api/departments.
type DepartmentsHandler struct {
	departments *service.DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departmentService *service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departmentService}
}

// List handles GET /api/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	result, err := h.departments.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Departments fetched successfully", fiber.Map{
		"departments": dto.NewDepartmentResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/departments, dispatching on the intent field.
func (h *DepartmentsHandler) Mutate(c *fiber.Ctx) error {
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

func (h *DepartmentsHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "name"); err != nil {
		return err
	}

	owner, _ := auth.AccountFromContext(c)
	dept, err := h.departments.Create(c.Context(), owner,
		c.FormValue("name"), c.FormValue("description"), c.FormValue("headName"))
	if err != nil {
		return err
	}

	departments := dto.NewDepartmentResponses([]domain.Department{*dept})
	return writeEnvelope(c, http.StatusCreated, "Department created successfully", departments[0])
}

func (h *DepartmentsHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.DepartmentPatch{
		Name:        formString(c, "name"),
		Description: formString(c, "description"),
		HeadName:    formString(c, "headName"),
	}
	if err := h.departments.Update(c.Context(), id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Department updated successfully", nil)
}

func (h *DepartmentsHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.departments.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Department deleted successfully", nil)
}
