package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ogulcan/lectica/internal/pkg/logger"
)

// ErrPoolExhausted is returned when no connection became available within the
// configured acquire wait window.
var ErrPoolExhausted = errors.New("no database connection available within the wait window")

// UnitOfWorkFn is a business operation executed against one leased connection.
type UnitOfWorkFn func(ctx context.Context, q Querier) error

// Runner demarcates units of work. ReadWrite wraps fn in a transaction on a
// freshly leased connection: BEGIN before fn, COMMIT when fn returns nil,
// ROLLBACK when it returns an error, release on every exit path. ReadOnly
// scopes a leased connection without transaction demarcation.
//
// Nesting a unit of work inside another is not supported. The inner call
// would lease a second connection and run in its own transaction, defeating
// atomicity. Orchestration is one top-level Runner call composing helpers
// that take the Querier as a parameter.
type Runner interface {
	ReadWrite(ctx context.Context, fn UnitOfWorkFn) error
	ReadOnly(ctx context.Context, fn UnitOfWorkFn) error
}

// TxRunner is the pgx-backed Runner.
type TxRunner struct {
	pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

var _ Runner = (*TxRunner)(nil)

// NewTxRunner creates a transaction runner on top of the connection pool.
func NewTxRunner(pool *pgxpool.Pool, acquireTimeout time.Duration) *TxRunner {
	return &TxRunner{
		pool:           pool,
		acquireTimeout: acquireTimeout,
	}
}

// acquire leases one connection, waiting at most the configured window.
func (r *TxRunner) acquire(ctx context.Context) (*pgxpool.Conn, error) {
	acquireCtx := ctx
	if r.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, r.acquireTimeout)
		defer cancel()
	}

	conn, err := r.pool.Acquire(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, ErrPoolExhausted
		}
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

// ReadWrite runs fn inside one transaction on one leased connection.
func (r *TxRunner) ReadWrite(ctx context.Context, fn UnitOfWorkFn) error {
	conn, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Rollback on panic, then re-throw
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
		}
		// Business errors pass through unchanged
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReadOnly runs fn on one leased connection without opening a transaction.
// Multi-statement read consistency is whatever the store provides by default.
func (r *TxRunner) ReadOnly(ctx context.Context, fn UnitOfWorkFn) error {
	conn, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return fn(ctx, conn)
}
