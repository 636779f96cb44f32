package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. Portfolio rank is unique per owner only when set;
// a plain unique index would reject multiple unranked applications.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS applications_owner_portfolio_rank_set
		ON applications (owner_id, portfolio_rank)
		WHERE portfolio_rank IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create portfolio rank index: %w", err)
	}

	return nil
}
