package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation = "23505"
	pqUndefinedTable  = "42P01"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == pqUniqueViolation
}

// isUndefinedTable reports a query against a table the migrations have not
// created yet.
func isUndefinedTable(err error) bool {
	return pqCode(err) == pqUndefinedTable
}
