package queue_reaper

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	ReleaseExpiredJobs(ctx context.Context) (int64, error)
}

// QueueReaper возвращает в очередь заявки с истёкшей арендой обработки.
// Это механизм передоставки: без него упавший воркер навсегда оставил бы
// заявку в processing.
type QueueReaper struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewQueueReaper(log logger.Logger, service Service, interval time.Duration) *QueueReaper {
	return &QueueReaper{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (q *QueueReaper) TTL() time.Duration {
	return q.interval
}

func (q *QueueReaper) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, q.interval)
	defer cancel()

	released, err := q.service.ReleaseExpiredJobs(ctxWithTimeout)

	if released > 0 {
		q.log.With(
			logger.NewField("released_jobs", released),
		).Warn("queue reaper redelivered expired jobs")
	}

	return err
}

func (q *QueueReaper) Info() string {
	return "dispatch queue reaper"
}
