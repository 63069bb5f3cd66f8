package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Queryable is the read subset of pgxpool.Pool used by repositories.
// A pool acquires a connection per call and releases it when the rows are closed.
type Queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
