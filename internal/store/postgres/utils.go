package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var commentOrderColumns = []string{"created_at", "updated_at", "thread_path", "is_pinned", "pinned_at"}

// addOrderBy appends "column[:asc|desc]" to the query. Unknown columns are
// ignored. Descending order puts NULLs last.
func addOrderBy(db *gorm.DB, orderBy string, allowedColumns []string) *gorm.DB {
	if orderBy == "" {
		return db
	}

	var column, order string
	expression := strings.Split(orderBy, ":")
	column = strings.ToLower(expression[0])
	if len(expression) == 2 {
		order = strings.ToLower(expression[1])
	}

	if !slices.Contains(allowedColumns, column) {
		return db
	}

	switch order {
	case "desc":
		return db.Order(fmt.Sprintf(`"%s" DESC NULLS LAST`, column))
	case "asc":
		return db.Order(fmt.Sprintf(`"%s" ASC`, column))
	default:
		return db.Order(fmt.Sprintf(`"%s"`, column))
	}
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation || errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

// likePattern escapes the LIKE wildcards of s.
func likePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
