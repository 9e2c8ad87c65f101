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
)

var addressColumns = []string{"id", "user_id", "name", "street", "city", "postal_code", "lat", "lng"}

func (r *PostgresRepo) ListAddresses(ctx context.Context, userID string) ([]entities.Address, error) {
	if !isUUID(userID) {
		return []entities.Address{}, nil
	}

	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name", "id").
		MustSql()

	var rows []Address
	if err := trm.From(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, entities.StoreFault(fmt.Errorf("failed to select addresses: %w", err))
	}

	result := make([]entities.Address, 0, len(rows))
	for _, row := range rows {
		result = append(result, AddressToEntity(row))
	}
	return result, nil
}

func (r *PostgresRepo) GetAddress(ctx context.Context, userID, id string) (entities.Address, error) {
	if !isUUID(id) || !isUUID(userID) {
		return entities.Address{}, entities.ErrAddressNotFound
	}

	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": id, "user_id": userID}).
		MustSql()

	var row Address
	err := trm.From(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, entities.StoreFault(fmt.Errorf("failed to get address: %w", err))
	}
	return AddressToEntity(row), nil
}

// SaveAddress inserts the address or replaces it wholesale. An id owned by
// another user is reported as not found.
func (r *PostgresRepo) SaveAddress(ctx context.Context, a entities.Address) (entities.Address, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if !isUUID(a.ID) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	lat, lng := nullCoordinate(a.Location)

	query, args := r.qb.Insert("addresses").
		Columns(addressColumns...).
		Values(a.ID, a.UserID, a.Name, a.Street, a.City, a.PostalCode, lat, lng).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			street = EXCLUDED.street,
			city = EXCLUDED.city,
			postal_code = EXCLUDED.postal_code,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng
		WHERE addresses.user_id = EXCLUDED.user_id
		RETURNING id, user_id, name, street, city, postal_code, lat, lng`).
		MustSql()

	var row Address
	err := trm.From(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, entities.StoreFault(fmt.Errorf("failed to save address: %w", err))
	}
	return AddressToEntity(row), nil
}

func (r *PostgresRepo) DeleteAddress(ctx context.Context, userID, id string) error {
	if !isUUID(id) || !isUUID(userID) {
		return entities.ErrAddressNotFound
	}

	query, args := r.qb.Delete("addresses").
		Where(sq.Eq{"id": id, "user_id": userID}).
		MustSql()

	res, err := trm.From(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return entities.StoreFault(fmt.Errorf("failed to delete address: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.StoreFault(fmt.Errorf("failed to delete address: %w", err))
	}
	if n == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}
