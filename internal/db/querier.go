package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the connection handle repositories operate on. Both pgx.Tx and
// *pgxpool.Conn satisfy it, so the same repository method works inside a
// transaction and on a plain leased connection. Repositories never hold a
// Querier, the owning unit of work passes it into every call.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

var (
	_ Querier = (pgx.Tx)(nil)
	_ Querier = (*pgxpool.Conn)(nil)
)
