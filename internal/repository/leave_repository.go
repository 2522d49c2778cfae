package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

var leaveSearchColumns = []string{"applicant_name", "leave_type", "reason"}

// LeaveRepository encapsulates leave application persistence.
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.LeaveApplication) error
	Update(ctx context.Context, id string, patch domain.LeaveApplicationPatch, decidedByID *string) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.LeaveApplication, error)
	List(ctx context.Context, term string, limit, offset int) ([]domain.LeaveApplication, int, error)
	ListAll(ctx context.Context) ([]domain.LeaveApplication, error)
}

type leaveRepository struct {
	pool *pgxpool.Pool
}

// NewLeaveRepository builds the repository.
func NewLeaveRepository(pool *pgxpool.Pool) LeaveRepository {
	return &leaveRepository{pool: pool}
}

const leaveSelect = `
        SELECT id, applicant_id, applicant_name, leave_type, start_date, end_date, reason, status, decided_by_id, created_at, updated_at
        FROM leave_applications`

func (r *leaveRepository) Create(ctx context.Context, leave *domain.LeaveApplication) error {
	const query = `
        INSERT INTO leave_applications (applicant_id, applicant_name, leave_type, start_date, end_date, reason, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		leave.ApplicantID,
		leave.ApplicantName,
		leave.LeaveType,
		leave.StartDate,
		leave.EndDate,
		leave.Reason,
		leave.Status,
	).Scan(&leave.ID, &leave.CreatedAt, &leave.UpdatedAt)
}

func (r *leaveRepository) Update(ctx context.Context, id string, patch domain.LeaveApplicationPatch, decidedByID *string) error {
	sets := []string{}
	args := []any{}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.LeaveType != nil {
		appendSet("leave_type", *patch.LeaveType)
	}
	if patch.StartDate != nil {
		appendSet("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		appendSet("end_date", *patch.EndDate)
	}
	if patch.Reason != nil {
		appendSet("reason", *patch.Reason)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
		if decidedByID != nil {
			appendSet("decided_by_id", *decidedByID)
		}
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE leave_applications SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM leave_applications WHERE id=$1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*domain.LeaveApplication, error) {
	var leave domain.LeaveApplication
	if err := r.pool.QueryRow(ctx, leaveSelect+" WHERE id=$1", id).Scan(
		&leave.ID,
		&leave.ApplicantID,
		&leave.ApplicantName,
		&leave.LeaveType,
		&leave.StartDate,
		&leave.EndDate,
		&leave.Reason,
		&leave.Status,
		&leave.DecidedByID,
		&leave.CreatedAt,
		&leave.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.LeaveApplication, int, error) {
	args := []any{}
	where := "1=1"
	if clause := searchClause(leaveSearchColumns, term, &args); clause != "" {
		where = clause
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM leave_applications WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset = clampLimits(limit, offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		leaveSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result, err := scanLeaves(rows)
	return result, total, err
}

func (r *leaveRepository) ListAll(ctx context.Context) ([]domain.LeaveApplication, error) {
	rows, err := r.pool.Query(ctx, leaveSelect+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaves(rows)
}

func scanLeaves(rows pgx.Rows) ([]domain.LeaveApplication, error) {
	var result []domain.LeaveApplication
	for rows.Next() {
		var leave domain.LeaveApplication
		if err := rows.Scan(
			&leave.ID,
			&leave.ApplicantID,
			&leave.ApplicantName,
			&leave.LeaveType,
			&leave.StartDate,
			&leave.EndDate,
			&leave.Reason,
			&leave.Status,
			&leave.DecidedByID,
			&leave.CreatedAt,
			&leave.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, leave)
	}
	return result, rows.Err()
}
