//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	UpdateStatusAndDriver(ctx context.Context, orderID string, from, to entities.OrderStatusType, driverID int64) error
}

type DriverRepository interface {
	SetAvailability(ctx context.Context, driverID int64, from, to bool) error
}

type DeliveryRepository interface {
	Create(ctx context.Context, orderID string, driverID int64) (*entities.Delivery, error)
}

type Locator interface {
	FindCandidates(ctx context.Context, pickup geo.Point, freshness time.Duration) ([]entities.Candidate, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
