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

// MemosHandler exposes /api/memos (and the legacy /api/tasks list alias).
type MemosHandler struct {
	memos *service.MemoService
}

// NewMemosHandler constructs handler.
func NewMemosHandler(memoService *service.MemoService) *MemosHandler {
	return &MemosHandler{memos: memoService}
}

// List handles GET /api/memos.
func (h *MemosHandler) List(c *fiber.Ctx) error {
	result, err := h.memos.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Memos fetched successfully", fiber.Map{
		"memos":       dto.NewMemoResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/memos, dispatching on the intent field.
func (h *MemosHandler) Mutate(c *fiber.Ctx) error {
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

func (h *MemosHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "title", "body", "recipient"); err != nil {
		return err
	}

	author, _ := auth.AccountFromContext(c)
	memo, err := h.memos.Create(c.Context(), author,
		c.FormValue("title"), c.FormValue("body"), c.FormValue("recipient"))
	if err != nil {
		return err
	}

	memos := dto.NewMemoResponses([]domain.Memo{*memo})
	return writeEnvelope(c, http.StatusCreated, "Memo created successfully", memos[0])
}

func (h *MemosHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.MemoPatch{
		Title:     formString(c, "title"),
		Body:      formString(c, "body"),
		Recipient: formString(c, "recipient"),
	}
	if err := h.memos.Update(c.Context(), id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Memo updated successfully", nil)
}

func (h *MemosHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.memos.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Memo deleted successfully", nil)
}
