package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

var memoSearchColumns = []string{"title", "body", "recipient"}

// MemoRepository encapsulates memo persistence.
type MemoRepository interface {
	Create(ctx context.Context, memo *domain.Memo) error
	Update(ctx context.Context, id string, patch domain.MemoPatch) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Memo, error)
	List(ctx context.Context, term string, limit, offset int) ([]domain.Memo, int, error)
}

type memoRepository struct {
	pool *pgxpool.Pool
}

// NewMemoRepository builds the repository.
func NewMemoRepository(pool *pgxpool.Pool) MemoRepository {
	return &memoRepository{pool: pool}
}

const memoSelect = `
        SELECT id, title, body, recipient, author_id, created_at, updated_at
        FROM memos`

func (r *memoRepository) Create(ctx context.Context, memo *domain.Memo) error {
	const query = `
        INSERT INTO memos (title, body, recipient, author_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		memo.Title,
		memo.Body,
		memo.Recipient,
		memo.AuthorID,
	).Scan(&memo.ID, &memo.CreatedAt, &memo.UpdatedAt)
}

func (r *memoRepository) Update(ctx context.Context, id string, patch domain.MemoPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title=$%d", len(args)))
	}
	if patch.Body != nil {
		args = append(args, *patch.Body)
		sets = append(sets, fmt.Sprintf("body=$%d", len(args)))
	}
	if patch.Recipient != nil {
		args = append(args, *patch.Recipient)
		sets = append(sets, fmt.Sprintf("recipient=$%d", len(args)))
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE memos SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memoRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM memos WHERE id=$1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memoRepository) GetByID(ctx context.Context, id string) (*domain.Memo, error) {
	var memo domain.Memo
	if err := r.pool.QueryRow(ctx, memoSelect+" WHERE id=$1", id).Scan(
		&memo.ID,
		&memo.Title,
		&memo.Body,
		&memo.Recipient,
		&memo.AuthorID,
		&memo.CreatedAt,
		&memo.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &memo, nil
}

func (r *memoRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.Memo, int, error) {
	args := []any{}
	where := "1=1"
	if clause := searchClause(memoSearchColumns, term, &args); clause != "" {
		where = clause
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM memos WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset = clampLimits(limit, offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		memoSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Memo
	for rows.Next() {
		var memo domain.Memo
		if err := rows.Scan(
			&memo.ID,
			&memo.Title,
			&memo.Body,
			&memo.Recipient,
			&memo.AuthorID,
			&memo.CreatedAt,
			&memo.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, memo)
	}
	return result, total, rows.Err()
}
