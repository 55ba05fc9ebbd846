//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	FinishActiveByOrderID(ctx context.Context, orderID string, status entities.DeliveryStatusType) (*entities.Delivery, error)
}

type DriverRepository interface {
	SetAvailability(ctx context.Context, driverID int64, from, to bool) error
}

type OrderRepository interface {
	UpdateStatus(ctx context.Context, orderID string, to entities.OrderStatusType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
