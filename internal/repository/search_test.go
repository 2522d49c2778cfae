package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSearchClause(t *testing.T) {
	t.Run("blank term yields no clause", func(t *testing.T) {
		args := []any{}
		clause := searchClause([]string{"name", "email"}, "   ", &args)
		assert.Empty(t, clause)
		assert.Empty(t, args)
	})

	t.Run("single token matches any column", func(t *testing.T) {
		args := []any{}
		clause := searchClause([]string{"name", "email"}, "Smith", &args)
		assert.Equal(t, `((LOWER(name) LIKE $1 ESCAPE '\') OR (LOWER(email) LIKE $2 ESCAPE '\'))`, clause)
		assert.Equal(t, []any{"%smith%", "%smith%"}, args)
	})

	t.Run("multiple tokens must all match within one column", func(t *testing.T) {
		args := []any{}
		clause := searchClause([]string{"name"}, "jane smith", &args)
		assert.Equal(t, `((LOWER(name) LIKE $1 ESCAPE '\' AND LOWER(name) LIKE $2 ESCAPE '\'))`, clause)
		assert.Equal(t, []any{"%jane%", "%smith%"}, args)
	})

	t.Run("placeholders continue after existing args", func(t *testing.T) {
		args := []any{"existing"}
		clause := searchClause([]string{"subject"}, "deed", &args)
		assert.Equal(t, `((LOWER(subject) LIKE $2 ESCAPE '\'))`, clause)
		assert.Len(t, args, 2)
	})

	t.Run("percent is matched literally", func(t *testing.T) {
		args := []any{}
		searchClause([]string{"title"}, "100%", &args)
		assert.Equal(t, []any{`%100\%%`}, args)
	})

	t.Run("underscore is matched literally", func(t *testing.T) {
		args := []any{}
		searchClause([]string{"title"}, "plan_b", &args)
		assert.Equal(t, []any{`%plan\_b%`}, args)
	})

	t.Run("backslash is matched literally", func(t *testing.T) {
		args := []any{}
		searchClause([]string{"title"}, `a\b`, &args)
		assert.Equal(t, []any{`%a\\b%`}, args)
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		pageSize int
		want     int
	}{
		{"no matches", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"single item", 1, 10, 1},
		{"zero page size", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestClampLimits(t *testing.T) {
	limit, offset := clampLimits(0, -5)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	limit, offset = clampLimits(25, 50)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
}
