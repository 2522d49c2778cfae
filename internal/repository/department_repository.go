package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-office-service/internal/domain"
)

var departmentSearchColumns = []string{"name", "description", "head_name"}

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, id string, patch domain.DepartmentPatch) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	GetByNameAndOwner(ctx context.Context, name string, ownerID *string) (*domain.Department, error)
	List(ctx context.Context, term string, limit, offset int) ([]domain.Department, int, error)
}

type departmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

const departmentSelect = `
        SELECT id, name, description, owner_id, head_name, created_at, updated_at
        FROM departments`

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name, description, owner_id, head_name)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		dept.Name,
		dept.Description,
		dept.OwnerID,
		dept.HeadName,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
}

func (r *departmentRepository) Update(ctx context.Context, id string, patch domain.DepartmentPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name=$%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description=$%d", len(args)))
	}
	if patch.HeadName != nil {
		args = append(args, *patch.HeadName)
		sets = append(sets, fmt.Sprintf("head_name=$%d", len(args)))
	}
	sets = append(sets, "updated_at=NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE departments SET %s WHERE id=$%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM departments WHERE id=$1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return r.fetchSingle(ctx, departmentSelect+" WHERE id=$1", []any{id})
}

func (r *departmentRepository) GetByNameAndOwner(ctx context.Context, name string, ownerID *string) (*domain.Department, error) {
	if ownerID == nil {
		return r.fetchSingle(ctx, departmentSelect+" WHERE LOWER(name)=LOWER($1) AND owner_id IS NULL", []any{name})
	}
	return r.fetchSingle(ctx, departmentSelect+" WHERE LOWER(name)=LOWER($1) AND owner_id=$2", []any{name, *ownerID})
}

func (r *departmentRepository) fetchSingle(ctx context.Context, query string, args []any) (*domain.Department, error) {
	var dept domain.Department
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.OwnerID,
		&dept.HeadName,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context, term string, limit, offset int) ([]domain.Department, int, error) {
	args := []any{}
	where := "1=1"
	if clause := searchClause(departmentSearchColumns, term, &args); clause != "" {
		where = clause
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM departments WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset = clampLimits(limit, offset)
	query := fmt.Sprintf("%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d",
		departmentSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(
			&dept.ID,
			&dept.Name,
			&dept.Description,
			&dept.OwnerID,
			&dept.HeadName,
			&dept.CreatedAt,
			&dept.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		result = append(result, dept)
	}
	return result, total, rows.Err()
}
