package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostgresRepo struct {
	logger *slog.Logger
	db     *sqlx.DB
	qb     sq.StatementBuilderType
}

func NewPostgresRepo(logger *slog.Logger, db *sqlx.DB) *PostgresRepo {
	return &PostgresRepo{
		logger: logger.With(slog.String("repo", "postgres")),
		db:     db,
		qb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *PostgresRepo) InsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.ID = uuid.NewString()

	driverLat, driverLng := nullCoordinate(o.DriverLocation)
	var addr entities.DeliveryAddress
	if o.Address != nil {
		addr = *o.Address
	}
	addrLat, addrLng := nullCoordinate(addr.Location)

	// created_at выставляет триггер
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "user_id", "driver_id", "total", "status",
			"driver_lat", "driver_lng",
			"address_name", "address_street", "address_city", "address_postal_code",
			"address_lat", "address_lng",
		).
		Values(
			o.ID, o.UserID, nullString(o.DriverID), o.Total, string(o.Status),
			driverLat, driverLng,
			nullString(addr.Name), nullString(addr.Street), nullString(addr.City), nullString(addr.PostalCode),
			addrLat, addrLng,
		).
		Suffix("RETURNING created_at").
		MustSql()

	if err := trm.From(ctx, r.db).GetContext(ctx, &o.CreatedAt, query, args...); err != nil {
		return entities.Order{}, entities.StoreFault(fmt.Errorf("failed to insert order: %w", err))
	}
	return o, nil
}

func (r *PostgresRepo) InsertLineItems(ctx context.Context, orderID string, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "position", "product_id", "name", "price", "image_url")
	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.Name, it.Price, it.ImageURL)
	}

	query, args := q.MustSql()
	if _, err := trm.From(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return entities.StoreFault(fmt.Errorf("failed to insert line items: %w", err))
	}
	return nil
}

func (r *PostgresRepo) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	if !isUUID(id) {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var row Order
	err := trm.From(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, entities.StoreFault(fmt.Errorf("failed to get order: %w", err))
	}

	return r.withItems(ctx, row)
}

// ListOrders returns orders matching filter, newest first. Records that
// cannot be decoded are logged and skipped.
func (r *PostgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")

	if filter.ID != "" {
		if !isUUID(filter.ID) {
			return []entities.Order{}, nil
		}
		q = q.Where(sq.Eq{"id": filter.ID})
	}
	if filter.UserID != "" {
		q = q.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.DriverID != "" {
		q = q.Where(sq.Eq{"driver_id": filter.DriverID})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where(sq.Eq{"status": statuses})
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	query, args := q.OrderBy("created_at DESC").MustSql()

	var rows []Order
	if err := trm.From(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, entities.StoreFault(fmt.Errorf("failed to select orders: %w", err))
	}
	if len(rows) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	items, err := r.selectItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := DecodeOrder(row, items[row.ID])
		if err != nil {
			malformedRecords.Inc()
			r.logger.WarnContext(ctx, "skipping malformed order", slog.String("order_id", row.ID), slog.Any("error", err))
			continue
		}
		result = append(result, order)
	}
	return result, nil
}

func (r *PostgresRepo) AcceptOrder(ctx context.Context, id, driverID string) (entities.Order, error) {
	return r.updateOrder(ctx, id,
		sq.Eq{"driver_id": driverID, "status": string(entities.StatusPreparing)},
		sq.Eq{"status": string(entities.StatusCreated), "driver_id": nil},
		nil,
	)
}

func (r *PostgresRepo) AdvanceStatus(ctx context.Context, id, driverID string, expected, next entities.Status) (entities.Order, error) {
	return r.updateOrder(ctx, id,
		sq.Eq{"status": string(next)},
		sq.Eq{"status": string(expected), "driver_id": driverID},
		nil,
	)
}

func (r *PostgresRepo) CancelOrder(ctx context.Context, id, userID string) (entities.Order, error) {
	active := make([]string, len(entities.ActiveStatuses))
	for i, s := range entities.ActiveStatuses {
		active[i] = string(s)
	}

	return r.updateOrder(ctx, id,
		sq.Eq{"status": string(entities.StatusCanceled)},
		sq.Eq{"status": active, "user_id": userID},
		func(current entities.Order) error {
			if current.UserID != userID {
				return entities.ErrOrderNotFound
			}
			return entities.ErrInvalidTransition
		},
	)
}

func (r *PostgresRepo) UpdateDriverLocation(ctx context.Context, id, driverID string, c entities.Coordinate) error {
	if !isUUID(id) {
		return entities.ErrOrderNotFound
	}

	query, args := r.qb.Update("orders").
		SetMap(sq.Eq{"driver_lat": c.Lat, "driver_lng": c.Lng}).
		Where(sq.Eq{"id": id, "status": string(entities.StatusOnTheWay), "driver_id": driverID}).
		MustSql()

	res, err := trm.From(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return entities.StoreFault(fmt.Errorf("failed to update driver location: %w", err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.StoreFault(fmt.Errorf("failed to update driver location: %w", err))
	}
	if n == 0 {
		return r.rejection(ctx, id, nil)
	}
	return nil
}

// updateOrder applies set only when the row still satisfies cond.
// When nothing was updated the reason is derived from the current row.
func (r *PostgresRepo) updateOrder(ctx context.Context, id string, set sq.Eq, cond sq.Eq, reject func(entities.Order) error) (entities.Order, error) {
	if !isUUID(id) {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	query, args := r.qb.Update("orders").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Where(cond).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		MustSql()

	var row Order
	err := trm.From(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, r.rejection(ctx, id, reject)
	}
	if err != nil {
		return entities.Order{}, entities.StoreFault(fmt.Errorf("failed to update order: %w", err))
	}

	return r.withItems(ctx, row)
}

func (r *PostgresRepo) rejection(ctx context.Context, id string, reject func(entities.Order) error) error {
	current, err := r.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if reject != nil {
		return reject(current)
	}
	return entities.ErrInvalidTransition
}

func (r *PostgresRepo) withItems(ctx context.Context, row Order) (entities.Order, error) {
	items, err := r.selectItems(ctx, []string{row.ID})
	if err != nil {
		return entities.Order{}, err
	}
	return DecodeOrder(row, items[row.ID])
}

func (r *PostgresRepo) selectItems(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	query, args := r.qb.Select("order_id", "position", "product_id", "name", "price", "image_url").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := trm.From(ctx, r.db).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, entities.StoreFault(fmt.Errorf("failed to select line items: %w", err))
	}

	result := make(map[string][]Item, len(orderIDs))
	for _, it := range items {
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, nil
}

func isUUID(s string) bool {
	return uuid.Validate(s) == nil
}
