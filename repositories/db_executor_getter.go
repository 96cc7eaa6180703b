package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Executor abstracts a pgx pool, connection or transaction. Repositories
// only ever see this interface; whether calls run inside a transaction is
// decided by the caller through the executor factory.
type Executor interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ExecutorGetter hands out executors backed by the shared connection pool.
// It is constructed once at startup and injected; there is no process-wide
// singleton handle.
type ExecutorGetter struct {
	connectionPool *pgxpool.Pool
}

func NewExecutorGetter(pool *pgxpool.Pool) ExecutorGetter {
	return ExecutorGetter{
		connectionPool: pool,
	}
}

func (g ExecutorGetter) GetExecutor() Executor {
	return g.connectionPool
}

func (g ExecutorGetter) Transaction(ctx context.Context, fn func(tx Executor) error) error {
	err := pgx.BeginFunc(ctx, g.connectionPool, func(tx pgx.Tx) error {
		return fn(tx)
	})
	return errors.Wrap(err, "error executing transaction")
}
