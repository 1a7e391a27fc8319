package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatherly/gatherly/internal/domain/repository"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so the
// same repository code runs pooled or inside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store scopes repositories to single-transaction units of work.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// InTx begins a transaction, binds repositories to it and commits if fn
// returns nil. Any error rolls the whole unit back.
func (s *Store) InTx(ctx context.Context, fn func(r *repository.Repos) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	r := &repository.Repos{
		Users:      NewUserRepository(tx),
		Events:     NewEventRepository(tx),
		Attendance: NewAttendanceRepository(tx),
	}
	if err := fn(r); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ repository.TxRunner = (*Store)(nil)
