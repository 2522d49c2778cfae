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

// ContactsHandler exposes /api/contacts. The create intent is reachable
// without a session since it backs the public website contact form; update
// and delete still require one.
type ContactsHandler struct {
	contacts *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contactService}
}

// List handles GET /api/contacts.
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	result, err := h.contacts.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Contacts fetched successfully", fiber.Map{
		"contacts":    dto.NewContactMessageResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/contacts, dispatching on the intent field.
func (h *ContactsHandler) Mutate(c *fiber.Ctx) error {
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

func (h *ContactsHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "name", "email", "message"); err != nil {
		return err
	}

	msg, err := h.contacts.Create(c.Context(), service.ContactCreateInput{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Subject: c.FormValue("subject"),
		Message: c.FormValue("message"),
	})
	if err != nil {
		return err
	}

	messages := dto.NewContactMessageResponses([]domain.ContactMessage{*msg})
	return writeEnvelope(c, http.StatusCreated, "Contact created successfully", messages[0])
}

func (h *ContactsHandler) update(c *fiber.Ctx) error {
	if _, ok := auth.AccountFromContext(c); !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.ContactMessagePatch{
		Name:    formString(c, "name"),
		Email:   formString(c, "email"),
		Phone:   formString(c, "phone"),
		Subject: formString(c, "subject"),
		Message: formString(c, "message"),
	}
	if err := h.contacts.Update(c.Context(), id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Contact updated successfully", nil)
}

func (h *ContactsHandler) delete(c *fiber.Ctx) error {
	if _, ok := auth.AccountFromContext(c); !ok {
		return apperrors.NewUnauthorized("Unauthorized")
	}
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.contacts.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Contact deleted successfully", nil)
}
