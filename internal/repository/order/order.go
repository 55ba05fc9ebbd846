package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
	deliverysvc "dispatch/internal/service/delivery"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetByID возвращает заказ вместе с точкой забора, унаследованной от мерчанта.
func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT
			o.id, o.merchant_id, o.customer_id, o.status, o.driver_id,
			m.lat, m.lon,
			o.created_at, o.updated_at
		FROM orders o
		JOIN merchants m ON m.id = o.merchant_id
		WHERE o.id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.MerchantID,
		&orderDB.CustomerID,
		&orderDB.Status,
		&orderDB.DriverID,
		&orderDB.PickupLat,
		&orderDB.PickupLon,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// UpdateStatusAndDriver переводит заказ из ожидаемого статуса и привязывает
// водителя одним условным UPDATE. Ноль затронутых строк означает, что заказ
// поменялся под конкурирующим воркером.
func (r *Repository) UpdateStatusAndDriver(ctx context.Context, orderID string, from, to entities.OrderStatusType, driverID int64) error {
	query := `
		UPDATE orders
		SET status = $1,
		    driver_id = $2,
		    updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	result, err := r.querier.Exec(ctx, query, to.String(), driverID, orderID, from.String())
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return assignment.ErrOrderStateChanged
	}

	return nil
}

// UpdateStatus переводит заказ в терминальный статус, отказывая в переходе
// из уже терминального состояния.
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, to entities.OrderStatusType) error {
	query := `
		UPDATE orders
		SET status = $1,
		    updated_at = NOW()
		WHERE id = $2 AND status NOT IN ('completed', 'cancelled')
	`

	result, err := r.querier.Exec(ctx, query, to.String(), orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return deliverysvc.ErrOrderStateChanged
	}

	return nil
}
