//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatcher_test
package dispatcher

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
	"dispatch/pkg/logger"
)

type Queue interface {
	Enqueue(ctx context.Context, orderID, merchantID string) error
	Dequeue(ctx context.Context) (*entities.DispatchJob, error)
	Ack(ctx context.Context, job *entities.DispatchJob) error
	Retry(ctx context.Context, job *entities.DispatchJob, delay time.Duration) error
	Fail(ctx context.Context, job *entities.DispatchJob) error
	ReleaseExpired(ctx context.Context) (int64, error)
}

type Transactor interface {
	TryAssign(ctx context.Context, orderID string) (*assignment.Result, error)
}

type Notifier interface {
	NotifyAssignment(ctx context.Context, orderID string, driverID int64) error
	NotifyDispatchFailed(ctx context.Context, orderID string) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
