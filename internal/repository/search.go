package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// likeEscaper neutralizes LIKE metacharacters so a token only matches itself.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchClause builds a WHERE fragment for a free-text search term. The term
// is split on whitespace; a row matches when at least one of the given columns
// contains every token as a case-insensitive literal substring. Returns "" for
// a blank term.
func searchClause(columns []string, term string, args *[]any) string {
	tokens := strings.Fields(strings.ToLower(term))
	if len(tokens) == 0 {
		return ""
	}

	columnClauses := make([]string, 0, len(columns))
	for _, col := range columns {
		tokenClauses := make([]string, 0, len(tokens))
		for _, token := range tokens {
			*args = append(*args, "%"+likeEscaper.Replace(token)+"%")
			tokenClauses = append(tokenClauses, fmt.Sprintf(`LOWER(%s) LIKE $%d ESCAPE '\'`, col, len(*args)))
		}
		columnClauses = append(columnClauses, "("+strings.Join(tokenClauses, " AND ")+")")
	}
	return "(" + strings.Join(columnClauses, " OR ") + ")"
}

// TotalPages computes the page count for a result set.
func TotalPages(matchingCount, pageSize int) int {
	if matchingCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (matchingCount + pageSize - 1) / pageSize
}

// IsUniqueViolation reports whether err is a Postgres unique-index violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func clampLimits(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
