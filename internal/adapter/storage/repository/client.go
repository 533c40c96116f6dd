package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var clientColumns = []string{"id", "company_name", "cnpj", "email", "created_at", "updated_at"}

func scanClient(row pgx.Row) (*domain.Client, error) {
	c := domain.Client{}
	err := row.Scan(&c.ID, &c.CompanyName, &c.CNPJ, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Insert("clients").
		Columns("company_name", "cnpj", "email").
		Values(client.CompanyName, client.CNPJ, client.Email).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return client, nil
}

func (r *Repository) ReadClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return readClient(ctx, r.db, r.db.QueryBuilder, id, "")
}

func readClient(ctx context.Context, q querier, qb *sq.StatementBuilderType, id uuid.UUID, lock string) (*domain.Client, error) {
	statement := qb.Select(clientColumns...).From("clients").Where(sq.Eq{"id": id})
	if lock != "" {
		statement = statement.Suffix(lock)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	client, err := scanClient(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("client", id)
		}
		return nil, mapError(err)
	}
	return client, nil
}

func (r *Repository) GetClientByCNPJ(ctx context.Context, cnpj string) (*domain.Client, error) {
	sql, args, err := r.db.QueryBuilder.
		Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"cnpj": cnpj}).
		ToSql()
	if err != nil {
		return nil, err
	}

	client, err := scanClient(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return client, nil
}

func (r *Repository) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	statement := r.db.QueryBuilder.
		Update("clients").
		Set("company_name", client.CompanyName).
		Set("cnpj", client.CNPJ).
		Set("email", client.Email).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": client.ID}).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("client", client.ID)
		}
		return nil, mapError(err)
	}
	return client, nil
}

func (r *Repository) DeleteClient(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.db.QueryBuilder.Delete("clients").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("client", id)
	}
	return nil
}

func (r *Repository) ListClients(ctx context.Context, page domain.Page) ([]*domain.Client, int, error) {
	total, err := count(ctx, r.db, r.db.QueryBuilder, "clients")
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := paginate(r.db.QueryBuilder.Select(clientColumns...).From("clients"), page).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, client)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}
