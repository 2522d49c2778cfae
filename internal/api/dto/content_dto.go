package dto

import (
	"time"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

// BlogPostResponse is the wire shape for a blog post.
type BlogPostResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary"`
	Body       string    `json:"body"`
	AuthorID   *string   `json:"authorId,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	CategoryID *string   `json:"categoryId,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewBlogPostResponses converts a slice.
func NewBlogPostResponses(posts []domain.BlogPost) []BlogPostResponse {
	out := make([]BlogPostResponse, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		out = append(out, BlogPostResponse{
			ID:         p.ID,
			Title:      p.Title,
			Summary:    p.Summary,
			Body:       p.Body,
			AuthorID:   p.AuthorID,
			AuthorName: p.AuthorName,
			CategoryID: p.CategoryID,
			ImageURL:   p.ImageURL,
			CreatedAt:  p.CreatedAt,
			UpdatedAt:  p.UpdatedAt,
		})
	}
	return out
}

// CategoryResponse is the wire shape for a category.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	OwnerID     *string   `json:"ownerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCategoryResponses converts a slice.
func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		cat := &categories[i]
		out = append(out, CategoryResponse{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			OwnerID:     cat.OwnerID,
			CreatedAt:   cat.CreatedAt,
			UpdatedAt:   cat.UpdatedAt,
		})
	}
	return out
}
