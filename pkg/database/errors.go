package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes for schema drift: relation (table) and column missing.
const (
	pgUndefinedTable  = "42P01"
	pgUndefinedColumn = "42703"
)

// IsMissingRelation reports whether err indicates a missing table or column.
// Callers use this to degrade gracefully when a deployment runs ahead of its
// migrations (e.g., the planner ranks without priority_weight, plan
// persistence is skipped) instead of failing the whole request.
func IsMissingRelation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUndefinedTable || pgErr.Code == pgUndefinedColumn
	}

	// Fallback for drivers that flatten the error into a string.
	msg := err.Error()
	return strings.Contains(msg, "does not exist") &&
		(strings.Contains(msg, "relation") || strings.Contains(msg, "column"))
}

// IsUniqueViolation reports whether err is a Postgres unique constraint
// violation (duplicate key).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key value")
}
