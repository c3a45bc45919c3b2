package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// Filter gom các điều kiện WHERE và args theo thứ tự placeholder $1, $2, ...
type Filter struct {
	clauses []string
	args    []any
}

// Add appends "column op $n" bound to value.
func (f *Filter) Add(column, op string, value any) {
	f.args = append(f.args, value)
	f.clauses = append(f.clauses, fmt.Sprintf("%s %s $%d", column, op, len(f.args)))
}

// Where returns " WHERE ..." or an empty string when there are no clauses.
func (f *Filter) Where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + JoinWithAnd(f.clauses)
}

// Page appends LIMIT/OFFSET placeholders and returns the final args.
func (f *Filter) Page(p Pagination) (string, []any) {
	args := append(f.args, p.Limit, p.Skip)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

func (f *Filter) Args() []any {
	return f.args
}

// PostgreSQL SQLSTATE codes
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
)

// PgErrorCode returns the SQLSTATE of err, or "" if it is not a PgError.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUniqueViolation(err error) bool {
	return PgErrorCode(err) == PgUniqueViolation
}

func IsForeignKeyViolation(err error) bool {
	return PgErrorCode(err) == PgForeignKeyViolation
}

// ConstraintName returns the violated constraint, if any.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
