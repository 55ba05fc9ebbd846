//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=locator_test
package locator

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type DriverRepository interface {
	FindAvailableApproved(ctx context.Context) ([]entities.Driver, error)
}

type LocationRepository interface {
	MostRecentFor(ctx context.Context, driverID int64) (*entities.DriverLocation, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
