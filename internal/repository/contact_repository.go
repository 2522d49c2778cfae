package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

var contactSearchColumns = []string{"name", "email", "subject", "message"}

// ContactRepository stores website contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	Update(ctx context.Context, id string, patch domain.ContactMessagePatch) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ContactMessage, error)
	List(ctx context.Context, term string, limit, offset int) ([]domain.ContactMessage, int, error)
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository builds the repository.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

const contactSelect = `
        SELECT id, name, email, phone, subject, message, created_at
        FROM contact_messages`

func (r *contactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	const query = `
        INSERT INTO contact_messages (name, email, phone, subject, message)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
}

func (r *contactRepository) Update(ctx context.Context, id string, patch domain.ContactMessagePatch) error {
	sets := []string{}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Email != nil {
		appendSet("email", *patch.Email)
	}
	if patch.Phone != nil {
		appendSet("phone", *patch.Phone)
	}
	if patch.Subject != nil {
		appendSet("subject", *patch.Subject)
	}
	if patch.Message != nil {
		appendSet("message", *patch.Message)
	}
	if len(sets) == 0 {
		// nothing to merge; still report missing ids
		var exists bool
		if err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM contact_messages WHERE id=$1)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return pgx.ErrNoRows
		}
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE contact_messages SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM contact_messages WHERE id=$1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	if err := r.pool.QueryRow(ctx, contactSelect+" WHERE id=$1", id).Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Phone,
		&msg.Subject,
		&msg.Message,
		&msg.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.ContactMessage, int, error) {
	args := []any{}
	where := "1=1"
	if clause := searchClause(contactSearchColumns, term, &args); clause != "" {
		where = clause
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM contact_messages WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset = clampLimits(limit, offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		contactSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.ContactMessage
	for rows.Next() {
		var msg domain.ContactMessage
		if err := rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Phone,
			&msg.Subject,
			&msg.Message,
			&msg.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, msg)
	}
	return result, total, rows.Err()
}
