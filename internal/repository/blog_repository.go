package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

var blogSearchColumns = []string{"title", "summary", "author_name"}

// BlogRepository encapsulates blog post persistence.
type BlogRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	Update(ctx context.Context, id string, patch domain.BlogPostPatch) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.BlogPost, error)
	List(ctx context.Context, term string, limit, offset int) ([]domain.BlogPost, int, error)
}

type blogRepository struct {
	pool *pgxpool.Pool
}

// NewBlogRepository returns a Postgres-backed implementation.
func NewBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &blogRepository{pool: pool}
}

const blogSelect = `
        SELECT id, title, summary, body, author_id, author_name, category_id, image_url, created_at, updated_at
        FROM blog_posts`

func (r *blogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	const query = `
        INSERT INTO blog_posts (title, summary, body, author_id, author_name, category_id, image_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		post.Title,
		post.Summary,
		post.Body,
		post.AuthorID,
		post.AuthorName,
		post.CategoryID,
		post.ImageURL,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

func (r *blogRepository) Update(ctx context.Context, id string, patch domain.BlogPostPatch) error {
	sets := []string{}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Title != nil {
		appendSet("title", *patch.Title)
	}
	if patch.Summary != nil {
		appendSet("summary", *patch.Summary)
	}
	if patch.Body != nil {
		appendSet("body", *patch.Body)
	}
	if patch.CategoryID != nil {
		appendSet("category_id", *patch.CategoryID)
	}
	if patch.ImageURL != nil {
		appendSet("image_url", *patch.ImageURL)
	}
	if len(sets) == 0 {
		sets = append(sets, "updated_at=NOW()")
		args = append(args, id)
		cmd, err := r.pool.Exec(ctx, fmt.Sprintf("UPDATE blog_posts SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args)), args...)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE blog_posts SET %s, updated_at=NOW() WHERE id=$%d",
		strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM blog_posts WHERE id=$1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	if err := r.pool.QueryRow(ctx, blogSelect+" WHERE id=$1", id).Scan(
		&post.ID,
		&post.Title,
		&post.Summary,
		&post.Body,
		&post.AuthorID,
		&post.AuthorName,
		&post.CategoryID,
		&post.ImageURL,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.BlogPost, int, error) {
	args := []any{}
	where := "1=1"
	if clause := searchClause(blogSearchColumns, term, &args); clause != "" {
		where = clause
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM blog_posts WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset = clampLimits(limit, offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		blogSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.BlogPost
	for rows.Next() {
		var post domain.BlogPost
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Summary,
			&post.Body,
			&post.AuthorID,
			&post.AuthorName,
			&post.CategoryID,
			&post.ImageURL,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, post)
	}
	return result, total, rows.Err()
}
