package db

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Checker answers the row-existence and uniqueness questions the validation
// engine asks. Table and column names come from rule declarations in code,
// never from request input; they are still pattern-checked before
// interpolation.
type Checker struct {
	pool *pgxpool.Pool
}

func NewChecker(pool *pgxpool.Pool) *Checker {
	return &Checker{pool: pool}
}

func (c *Checker) Exists(ctx context.Context, table, column string, value interface{}) (bool, error) {
	if !identPattern.MatchString(table) || !identPattern.MatchString(column) {
		return false, fmt.Errorf("invalid identifier %q.%q", table, column)
	}
	var exists bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, table, column)
	if err := c.pool.QueryRow(ctx, query, value).Scan(&exists); err != nil {
		return false, fmt.Errorf("existence check %s.%s: %w", table, column, err)
	}
	return exists, nil
}

func (c *Checker) Taken(ctx context.Context, table, column string, value interface{}, excludeID int64) (bool, error) {
	if !identPattern.MatchString(table) || !identPattern.MatchString(column) {
		return false, fmt.Errorf("invalid identifier %q.%q", table, column)
	}
	var taken bool
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND id <> $2)`, table, column)
	if err := c.pool.QueryRow(ctx, query, value, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("uniqueness check %s.%s: %w", table, column, err)
	}
	return taken, nil
}
