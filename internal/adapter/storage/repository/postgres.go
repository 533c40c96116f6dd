package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/orderdesk/internal/adapter/storage"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// WithinTx runs fn in a serializable transaction. Products read through the
// unit of work are locked until commit.
func (r *Repository) WithinTx(ctx context.Context, fn port.TxFn) error {
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{IsoLevel: pgx.Serializable}, func(tx pgx.Tx) error {
		return fn(ctx, &unitOfWork{q: tx, qb: r.db.QueryBuilder})
	})
	return mapError(err)
}

func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrConflictingData
		case pgerrcode.ForeignKeyViolation:
			return domain.ErrReferencedData
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return domain.ErrConcurrentUpdate
		}
	}
	return err
}

func count(ctx context.Context, q querier, qb *sq.StatementBuilderType, table string) (int, error) {
	sql, args, err := qb.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return total, nil
}

func paginate(b sq.SelectBuilder, page domain.Page) sq.SelectBuilder {
	return b.OrderBy("created_at DESC", "id").
		Limit(uint64(page.Limit)).
		Offset(page.Offset())
}

var _ port.Repository = (*Repository)(nil)
