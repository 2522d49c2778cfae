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

// ComplaintsHandler exposes /api/complaints.
type ComplaintsHandler struct {
	complaints *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{complaints: complaintService}
}

// List handles GET /api/complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	result, err := h.complaints.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Complaints fetched successfully", fiber.Map{
		"complaints":  dto.NewComplaintResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/complaints, dispatching on the intent field.
func (h *ComplaintsHandler) Mutate(c *fiber.Ctx) error {
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

func (h *ComplaintsHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "complainant", "subject"); err != nil {
		return err
	}

	filedBy, _ := auth.AccountFromContext(c)
	complaint, err := h.complaints.Create(c.Context(), filedBy, service.ComplaintCreateInput{
		CaseNumber:  c.FormValue("caseNumber"),
		Complainant: c.FormValue("complainant"),
		Respondent:  c.FormValue("respondent"),
		Subject:     c.FormValue("subject"),
		Details:     c.FormValue("details"),
	})
	if err != nil {
		return err
	}

	complaints := dto.NewComplaintResponses([]domain.Complaint{*complaint})
	return writeEnvelope(c, http.StatusCreated, "Complaint created successfully", complaints[0])
}

func (h *ComplaintsHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.ComplaintPatch{
		Complainant: formString(c, "complainant"),
		Respondent:  formString(c, "respondent"),
		Subject:     formString(c, "subject"),
		Details:     formString(c, "details"),
	}
	if status := formString(c, "status"); status != nil {
		complaintStatus := domain.ComplaintStatus(*status)
		patch.Status = &complaintStatus
	}

	if err := h.complaints.Update(c.Context(), id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Complaint updated successfully", nil)
}

func (h *ComplaintsHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.complaints.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Complaint deleted successfully", nil)
}
