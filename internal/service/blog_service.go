package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/legal-office-service/internal/domain"
	"github.com/spec-kit/legal-office-service/internal/repository"
	apperrors "github.com/spec-kit/legal-office-service/pkg/util"
)

// BlogService manages website blog posts.
type BlogService struct {
	posts    repository.BlogRepository
	pageSize int
}

// NewBlogService builds the service.
func NewBlogService(posts repository.BlogRepository, pageSize int) *BlogService {
	return &BlogService{posts: posts, pageSize: pageSize}
}

// BlogCreateInput describes a new post; author fields come from the session.
type BlogCreateInput struct {
	Title      string
	Summary    string
	Body       string
	CategoryID *string
	ImageURL   string
}

// BlogList is one page of posts.
type BlogList struct {
	Items       []domain.BlogPost
	TotalPages  int
	CurrentPage int
}

// List returns one page of posts matching the search term.
func (s *BlogService) List(ctx context.Context, page int, term string) (*BlogList, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.posts.List(ctx, term, s.pageSize, (page-1)*s.pageSize)
	if err != nil {
		return nil, err
	}
	return &BlogList{
		Items:       items,
		TotalPages:  repository.TotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

// Create persists a new post attributed to the session account.
func (s *BlogService) Create(ctx context.Context, author *domain.Account, input BlogCreateInput) (*domain.BlogPost, error) {
	post := &domain.BlogPost{
		Title:      input.Title,
		Summary:    input.Summary,
		Body:       input.Body,
		CategoryID: input.CategoryID,
		ImageURL:   input.ImageURL,
	}
	if author != nil {
		post.AuthorID = &author.ID
		post.AuthorName = author.Name
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update merges the provided fields into an existing post.
func (s *BlogService) Update(ctx context.Context, id string, patch domain.BlogPostPatch) error {
	if err := s.posts.Update(ctx, id, patch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Blog")
		}
		return err
	}
	return nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Blog")
		}
		return err
	}
	return nil
}
