package location_cleanup

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	CleanupStaleLocations(ctx context.Context) (int64, error)
}

type LocationCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewLocationCleanup(log logger.Logger, service Service, interval time.Duration) *LocationCleanup {
	return &LocationCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (l *LocationCleanup) TTL() time.Duration {
	return l.interval
}

func (l *LocationCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.interval)
	defer cancel()

	rowsAffected, err := l.service.CleanupStaleLocations(ctxWithTimeout)

	if rowsAffected > 0 {
		l.log.With(
			logger.NewField("deleted_fixes", rowsAffected),
		).Info("location cleanup")
	}

	return err
}

func (l *LocationCleanup) Info() string {
	return "driver location cleanup"
}
