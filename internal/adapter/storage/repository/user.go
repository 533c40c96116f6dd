package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, user.Role).
		Suffix("RETURNING id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "password", "role", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"email": email})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &user, nil
}
