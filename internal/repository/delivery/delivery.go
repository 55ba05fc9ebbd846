package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
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

// Create создаёт активную доставку. Частичный уникальный индекс по order_id
// для активных записей превращает гонку двух воркеров за один заказ в нарушение
// уникальности, которое маппится в ErrOrderAlreadyAssigned.
func (r *Repository) Create(ctx context.Context, orderID string, driverID int64) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, driver_id, status)
		VALUES ($1, $2, 'active')
		RETURNING id, order_id, driver_id, status, created_at, updated_at
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.DriverID,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `
		SELECT id, order_id, driver_id, status, created_at, updated_at
		FROM deliveries
		WHERE order_id = $1 AND status = 'active'
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.DriverID,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliverysvc.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

// FinishActiveByOrderID переводит активную доставку заказа в терминальный статус
// и возвращает её. Отсутствие активной доставки — ErrDeliveryNotFound.
func (r *Repository) FinishActiveByOrderID(ctx context.Context, orderID string, status entities.DeliveryStatusType) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = $1,
		    updated_at = NOW()
		WHERE order_id = $2 AND status = 'active'
		RETURNING id, order_id, driver_id, status, created_at, updated_at
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, status.String(), orderID).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.DriverID,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliverysvc.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository finish error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}
