package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-office-service/internal/api/dto"
	"github.com/spec-kit/legal-office-service/internal/auth"
	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/service"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

const dateLayout = "2006-01-02"

// LeavesHandler exposes /api/leaves and the CSV export endpoint.
type LeavesHandler struct {
	leaves *service.LeaveService
}

// NewLeavesHandler constructs handler.
func NewLeavesHandler(leaveService *service.LeaveService) *LeavesHandler {
	return &LeavesHandler{leaves: leaveService}
}

// List handles GET /api/leaves.
func (h *LeavesHandler) List(c *fiber.Ctx) error {
	result, err := h.leaves.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Leaves fetched successfully", fiber.Map{
		"leaves":      dto.NewLeaveApplicationResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/leaves, dispatching on the intent field.
func (h *LeavesHandler) Mutate(c *fiber.Ctx) error {
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

// Export handles GET /api/leaves/export. It streams every leave application
// as a CSV attachment regardless of pagination.
func (h *LeavesHandler) Export(c *fiber.Ctx) error {
	leaves, err := h.leaves.ExportAll(c.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Applicant", "Leave Type", "Start Date", "End Date", "Reason", "Status", "Submitted At"})
	for _, leave := range leaves {
		_ = w.Write([]string{
			leave.ApplicantName,
			leave.LeaveType,
			leave.StartDate.Format(dateLayout),
			leave.EndDate.Format(dateLayout),
			leave.Reason,
			string(leave.Status),
			leave.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="leave-applications.csv"`)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *LeavesHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "leaveType", "startDate", "endDate", "reason"); err != nil {
		return err
	}

	start, err := time.Parse(dateLayout, c.FormValue("startDate"))
	if err != nil {
		return apperrors.NewValidationError("Invalid start date")
	}
	end, err := time.Parse(dateLayout, c.FormValue("endDate"))
	if err != nil {
		return apperrors.NewValidationError("Invalid end date")
	}

	applicant, _ := auth.AccountFromContext(c)
	leave, err := h.leaves.Create(c.Context(), applicant, service.LeaveCreateInput{
		LeaveType: c.FormValue("leaveType"),
		StartDate: start,
		EndDate:   end,
		Reason:    c.FormValue("reason"),
	})
	if err != nil {
		return err
	}

	leaves := dto.NewLeaveApplicationResponses([]domain.LeaveApplication{*leave})
	return writeEnvelope(c, http.StatusCreated, "Leave application created successfully", leaves[0])
}

func (h *LeavesHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.LeaveApplicationPatch{
		LeaveType: formString(c, "leaveType"),
		Reason:    formString(c, "reason"),
	}
	if raw := formString(c, "startDate"); raw != nil {
		start, err := time.Parse(dateLayout, *raw)
		if err != nil {
			return apperrors.NewValidationError("Invalid start date")
		}
		patch.StartDate = &start
	}
	if raw := formString(c, "endDate"); raw != nil {
		end, err := time.Parse(dateLayout, *raw)
		if err != nil {
			return apperrors.NewValidationError("Invalid end date")
		}
		patch.EndDate = &end
	}
	if raw := formString(c, "status"); raw != nil {
		status := domain.LeaveStatus(*raw)
		switch status {
		case domain.LeavePending, domain.LeaveApproved, domain.LeaveRejected:
		default:
			return apperrors.NewValidationError("Invalid status")
		}
		patch.Status = &status
	}

	actor, _ := auth.AccountFromContext(c)
	if err := h.leaves.Update(c.Context(), actor, id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Leave application updated successfully", nil)
}

func (h *LeavesHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.leaves.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Leave application deleted successfully", nil)
}
