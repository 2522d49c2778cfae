package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

var reportSearchColumns = []string{"title", "summary"}

// ReportRepository encapsulates monthly report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.MonthlyReport) error
	Update(ctx context.Context, id string, patch domain.MonthlyReportPatch) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.MonthlyReport, error)
	GetByPeriod(ctx context.Context, departmentID string, month, year int) (*domain.MonthlyReport, error)
	List(ctx context.Context, term string, limit, offset int) ([]domain.MonthlyReport, int, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the repository.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

const reportSelect = `
        SELECT id, title, summary, department_id, month, year, submitted_by_id, created_at, updated_at
        FROM monthly_reports`

func (r *reportRepository) Create(ctx context.Context, report *domain.MonthlyReport) error {
	const query = `
        INSERT INTO monthly_reports (title, summary, department_id, month, year, submitted_by_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		report.Title,
		report.Summary,
		report.DepartmentID,
		report.Month,
		report.Year,
		report.SubmittedByID,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

func (r *reportRepository) Update(ctx context.Context, id string, patch domain.MonthlyReportPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Title != nil {
		args = append(args, *patch.Title)
		sets = append(sets, fmt.Sprintf("title=$%d", len(args)))
	}
	if patch.Summary != nil {
		args = append(args, *patch.Summary)
		sets = append(sets, fmt.Sprintf("summary=$%d", len(args)))
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE monthly_reports SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM monthly_reports WHERE id=$1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.MonthlyReport, error) {
	return r.fetchSingle(ctx, reportSelect+" WHERE id=$1", []any{id})
}

func (r *reportRepository) GetByPeriod(ctx context.Context, departmentID string, month, year int) (*domain.MonthlyReport, error) {
	return r.fetchSingle(ctx, reportSelect+" WHERE department_id=$1 AND month=$2 AND year=$3",
		[]any{departmentID, month, year})
}

func (r *reportRepository) fetchSingle(ctx context.Context, query string, args []any) (*domain.MonthlyReport, error) {
	var report domain.MonthlyReport
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&report.ID,
		&report.Title,
		&report.Summary,
		&report.DepartmentID,
		&report.Month,
		&report.Year,
		&report.SubmittedByID,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.MonthlyReport, int, error) {
	args := []any{}
	where := "1=1"
	if clause := searchClause(reportSearchColumns, term, &args); clause != "" {
		where = clause
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM monthly_reports WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset = clampLimits(limit, offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY year DESC, month DESC LIMIT %d OFFSET %d",
		reportSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.MonthlyReport
	for rows.Next() {
		var report domain.MonthlyReport
		if err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Summary,
			&report.DepartmentID,
			&report.Month,
			&report.Year,
			&report.SubmittedByID,
			&report.CreatedAt,
			&report.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, report)
	}
	return result, total, rows.Err()
}
