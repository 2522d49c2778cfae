package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

var complaintSearchColumns = []string{"case_number", "complainant", "subject"}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	Update(ctx context.Context, id string, patch domain.ComplaintPatch) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.Complaint, error)
	List(ctx context.Context, term string, limit, offset int) ([]domain.Complaint, int, error)
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository builds the repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

const complaintSelect = `
        SELECT id, case_number, complainant, respondent, subject, details, status, filed_by_id, created_at, updated_at
        FROM complaints`

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (case_number, complainant, respondent, subject, details, status, filed_by_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.CaseNumber,
		complaint.Complainant,
		complaint.Respondent,
		complaint.Subject,
		complaint.Details,
		complaint.Status,
		complaint.FiledByID,
	).Scan(&complaint.ID, &complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) Update(ctx context.Context, id string, patch domain.ComplaintPatch) error {
	sets := []string{}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Complainant != nil {
		appendSet("complainant", *patch.Complainant)
	}
	if patch.Respondent != nil {
		appendSet("respondent", *patch.Respondent)
	}
	if patch.Subject != nil {
		appendSet("subject", *patch.Subject)
	}
	if patch.Details != nil {
		appendSet("details", *patch.Details)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE complaints SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM complaints WHERE id=$1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	return r.fetchSingle(ctx, complaintSelect+" WHERE id=$1", id)
}

func (r *complaintRepository) GetByCaseNumber(ctx context.Context, caseNumber string) (*domain.Complaint, error) {
	return r.fetchSingle(ctx, complaintSelect+" WHERE case_number=$1", caseNumber)
}

func (r *complaintRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&complaint.ID,
		&complaint.CaseNumber,
		&complaint.Complainant,
		&complaint.Respondent,
		&complaint.Subject,
		&complaint.Details,
		&complaint.Status,
		&complaint.FiledByID,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.Complaint, int, error) {
	args := []any{}
	where := "1=1"
	if clause := searchClause(complaintSearchColumns, term, &args); clause != "" {
		where = clause
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM complaints WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset = clampLimits(limit, offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		complaintSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.CaseNumber,
			&complaint.Complainant,
			&complaint.Respondent,
			&complaint.Subject,
			&complaint.Details,
			&complaint.Status,
			&complaint.FiledByID,
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, complaint)
	}
	return result, total, rows.Err()
}
