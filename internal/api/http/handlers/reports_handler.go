package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-office-service/internal/api/dto"
	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/service"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// ReportsHandler exposes /api/monthly-reports.
type ReportsHandler struct {
	reports *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reportService}
}

// List handles GET /api/monthly-reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	result, err := h.reports.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Reports fetched successfully", fiber.Map{
		"reports":     dto.NewMonthlyReportResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/monthly-reports, dispatching on the intent field.
func (h *ReportsHandler) Mutate(c *fiber.Ctx) error {
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

func (h *ReportsHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "title", "departmentId", "month", "year"); err != nil {
		return err
	}

	month, err := strconv.Atoi(c.FormValue("month"))
	if err != nil {
		return apperrors.NewValidationError("Invalid month")
	}
	year, err := strconv.Atoi(c.FormValue("year"))
	if err != nil {
		return apperrors.NewValidationError("Invalid year")
	}

	submitter, _ := auth.AccountFromContext(c)
	report, err := h.reports.Create(c.Context(), submitter, service.ReportCreateInput{
		Title:        c.FormValue("title"),
		Summary:      c.FormValue("summary"),
		DepartmentID: c.FormValue("departmentId"),
		Month:        month,
		Year:         year,
	})
	if err != nil {
		return err
	}

	reports := dto.NewMonthlyReportResponses([]domain.MonthlyReport{*report})
	return writeEnvelope(c, http.StatusCreated, "Report created successfully", reports[0])
}

func (h *ReportsHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.MonthlyReportPatch{
		Title:   formString(c, "title"),
		Summary: formString(c, "summary"),
	}
	if err := h.reports.Update(c.Context(), id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Report updated successfully", nil)
}

func (h *ReportsHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.reports.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Report deleted successfully", nil)
}
