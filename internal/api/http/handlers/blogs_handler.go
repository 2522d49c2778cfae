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

// BlogsHandler exposes /api/blogs.
type BlogsHandler struct {
	blogs *service.BlogService
}

// NewBlogsHandler constructs handler.
func NewBlogsHandler(blogService *service.BlogService) *BlogsHandler {
	return &BlogsHandler{blogs: blogService}
}

// List handles GET /api/blogs.
func (h *BlogsHandler) List(c *fiber.Ctx) error {
	result, err := h.blogs.List(c.Context(), parsePage(c), c.Query("search_term"))
	if err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Blogs fetched successfully", fiber.Map{
		"blogs":       dto.NewBlogPostResponses(result.Items),
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
	})
}

// Mutate handles POST /api/blogs, dispatching on the intent field.
func (h *BlogsHandler) Mutate(c *fiber.Ctx) error {
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

func (h *BlogsHandler) create(c *fiber.Ctx) error {
	if err := requireForm(c, "title", "body"); err != nil {
		return err
	}

	author, _ := auth.AccountFromContext(c)
	post, err := h.blogs.Create(c.Context(), author, service.BlogCreateInput{
		Title:      c.FormValue("title"),
		Summary:    c.FormValue("summary"),
		Body:       c.FormValue("body"),
		CategoryID: optionalID(c, "categoryId"),
		ImageURL:   c.FormValue("imageUrl"),
	})
	if err != nil {
		return err
	}

	posts := dto.NewBlogPostResponses([]domain.BlogPost{*post})
	return writeEnvelope(c, http.StatusCreated, "Blog created successfully", posts[0])
}

func (h *BlogsHandler) update(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}

	patch := domain.BlogPostPatch{
		Title:      formString(c, "title"),
		Summary:    formString(c, "summary"),
		Body:       formString(c, "body"),
		CategoryID: optionalID(c, "categoryId"),
		ImageURL:   formString(c, "imageUrl"),
	}
	if err := h.blogs.Update(c.Context(), id, patch); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Blog updated successfully", nil)
}

func (h *BlogsHandler) delete(c *fiber.Ctx) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	if err := h.blogs.Delete(c.Context(), id); err != nil {
		return err
	}
	return writeEnvelope(c, http.StatusOK, "Blog deleted successfully", nil)
}
