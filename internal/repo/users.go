package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var userColumns = []string{"id", "email", "display_name", "role", "password_hash", "token_version"}

func (r *PostgresRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	u.ID = uuid.NewString()

	query, args := r.qb.Insert("users").
		Columns("id", "email", "display_name", "role", "password_hash", "token_version").
		Values(u.ID, u.Email, u.DisplayName, string(u.Role), u.PasswordHash, u.TokenVersion).
		MustSql()

	_, err := trm.From(ctx, r.db).ExecContext(ctx, query, args...)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, entities.StoreFault(fmt.Errorf("failed to insert user: %w", err))
	}
	return u, nil
}

func (r *PostgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *PostgresRepo) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	if !isUUID(id) {
		return entities.User{}, entities.ErrUserNotFound
	}
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *PostgresRepo) BumpTokenVersion(ctx context.Context, id string) (int, error) {
	if !isUUID(id) {
		return 0, entities.ErrUserNotFound
	}

	query, args := r.qb.Update("users").
		Set("token_version", sq.Expr("token_version + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING token_version").
		MustSql()

	var version int
	err := trm.From(ctx, r.db).GetContext(ctx, &version, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, entities.ErrUserNotFound
	}
	if err != nil {
		return 0, entities.StoreFault(fmt.Errorf("failed to bump token version: %w", err))
	}
	return version, nil
}

func (r *PostgresRepo) UpdateDisplayName(ctx context.Context, id, name string) (entities.User, error) {
	if !isUUID(id) {
		return entities.User{}, entities.ErrUserNotFound
	}

	query, args := r.qb.Update("users").
		Set("display_name", name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, email, display_name, role, password_hash, token_version").
		MustSql()

	var row User
	err := trm.From(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, entities.StoreFault(fmt.Errorf("failed to update display name: %w", err))
	}
	return UserToEntity(row), nil
}

func (r *PostgresRepo) getUser(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).From("users").Where(where).MustSql()

	var row User
	err := trm.From(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, entities.StoreFault(fmt.Errorf("failed to get user: %w", err))
	}
	return UserToEntity(row), nil
}
