//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userID int64, notificationType entities.NotificationType, message string) (*entities.Notification, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, driverID int64) (*entities.Driver, error)
}
