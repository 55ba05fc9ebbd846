package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
	"dispatch/pkg/logger"
)

type Config struct {
	Workers        int
	PollInterval   time.Duration
	ProcessTimeout time.Duration
	MaxAttempts    int
	Backoff        BackoffConfig
}

type Dispatcher struct {
	log        handlerLogger
	queue      Queue
	transactor Transactor
	notifier   Notifier
	cfg        Config
}

func New(log handlerLogger, queue Queue, transactor Transactor, notifier Notifier, cfg Config) *Dispatcher {
	return &Dispatcher{
		log:        log,
		queue:      queue,
		transactor: transactor,
		notifier:   notifier,
		cfg:        cfg,
	}
}

// EnqueueDispatch ставит заказ в очередь диспетчеризации. Повторная постановка
// заказа с живой заявкой дедуплицируется очередью и не является ошибкой.
func (d *Dispatcher) EnqueueDispatch(ctx context.Context, orderID, merchantID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrInvalidOrderID
	}

	err := d.queue.Enqueue(ctx, orderID, merchantID)
	if err != nil {
		if errors.Is(err, ErrDuplicateJob) {
			d.log.Info("dispatch job already in flight",
				logger.NewField("order", orderID),
			)
			return nil
		}
		return fmt.Errorf("enqueue dispatch for order %s: %w", orderID, err)
	}
	return nil
}

// Run запускает пул воркеров, опрашивающих очередь. Блокирует до отмены контекста.
func (d *Dispatcher) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	for i := 0; i < d.cfg.Workers; i++ {
		workerID := i
		group.Go(func() error {
			return d.runWorker(groupCtx, workerID)
		})
	}

	return group.Wait()
}

// ReleaseExpiredJobs возвращает в очередь заявки с истёкшей арендой обработки.
func (d *Dispatcher) ReleaseExpiredJobs(ctx context.Context) (int64, error) {
	released, err := d.queue.ReleaseExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("release expired jobs: %w", err)
	}
	return released, nil
}

func (d *Dispatcher) runWorker(ctx context.Context, workerID int) error {
	workerLog := d.log.With(
		logger.NewField("worker", workerID),
	)

	for {
		job, err := d.queue.Dequeue(ctx)
		switch {
		case err == nil:
			d.processJob(ctx, workerLog, job)

		case errors.Is(err, ErrNoJob):
			if err := sleepCtx(ctx, d.cfg.PollInterval); err != nil {
				return err
			}

		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return ctx.Err()

		default:
			workerLog.Error("dequeue failed",
				logger.NewField("error", err),
			)
			if err := sleepCtx(ctx, d.cfg.PollInterval); err != nil {
				return err
			}
		}
	}
}

func (d *Dispatcher) processJob(ctx context.Context, log handlerLogger, job *entities.DispatchJob) {
	jobCtx, cancel := context.WithTimeout(ctx, d.cfg.ProcessTimeout)
	defer cancel()

	jobLog := log.With(
		logger.NewField("order", job.OrderID),
		logger.NewField("attempt", job.Attempt),
	)

	JobsInFlight.Inc()
	defer JobsInFlight.Dec()

	started := time.Now()
	result, err := d.transactor.TryAssign(jobCtx, job.OrderID)
	AssignDuration.Observe(time.Since(started).Seconds())

	if err != nil {
		// инфраструктурный сбой: заявку не трогаем, аренда истечёт
		// и очередь передоставит её сама
		jobLog.Error("try assign failed, leaving job for redelivery",
			logger.NewField("error", err),
		)
		JobsProcessedTotal.WithLabelValues("infrastructure_error").Inc()
		return
	}

	JobsProcessedTotal.WithLabelValues(result.Outcome.String()).Inc()

	switch result.Outcome {
	case assignment.OutcomeAssigned:
		d.ackJob(ctx, jobLog, job)
		if err := d.notifier.NotifyAssignment(ctx, job.OrderID, result.DriverID); err != nil {
			// уведомление не должно откатывать успешное назначение
			jobLog.Warn("assignment notification failed",
				logger.NewField("driver", result.DriverID),
				logger.NewField("error", err),
			)
		}
		jobLog.Info("driver assigned",
			logger.NewField("driver", result.DriverID),
		)

	case assignment.OutcomeNotDispatchable:
		// терминальное состояние, повтор не поможет
		jobLog.Info("order not dispatchable, acking without retry")
		d.ackJob(ctx, jobLog, job)

	case assignment.OutcomeNoCandidate, assignment.OutcomeConflict:
		d.requeueOrFail(ctx, jobLog, job, result.Outcome)
	}
}

func (d *Dispatcher) requeueOrFail(ctx context.Context, log handlerLogger, job *entities.DispatchJob, outcome assignment.Outcome) {
	if job.Attempt+1 >= d.cfg.MaxAttempts {
		if err := d.queue.Fail(ctx, job); err != nil {
			if errors.Is(err, ErrJobStateChanged) {
				// заявку уже вернул в очередь reaper, финальный сигнал
				// отправит тот воркер, который доведёт её до конца
				log.Warn("job state changed before fail, skipping failure signal")
				return
			}
			log.Error("fail job",
				logger.NewField("error", err),
			)
			return
		}

		JobsExhaustedTotal.Inc()
		log.Error("dispatch attempts exhausted, order left unassigned",
			logger.NewField("outcome", outcome.String()),
			logger.NewField("max_attempts", d.cfg.MaxAttempts),
		)

		if err := d.notifier.NotifyDispatchFailed(ctx, job.OrderID); err != nil {
			log.Warn("dispatch failure notification failed",
				logger.NewField("error", err),
			)
		}
		return
	}

	delay := d.cfg.Backoff.DelayFor(job.Attempt, outcome)
	if err := d.queue.Retry(ctx, job, delay); err != nil {
		if errors.Is(err, ErrJobStateChanged) {
			log.Warn("job state changed before retry, skipping")
			return
		}
		log.Error("retry job",
			logger.NewField("error", err),
		)
		return
	}

	JobRetriesTotal.WithLabelValues(outcome.String()).Inc()
	log.Info("job requeued",
		logger.NewField("outcome", outcome.String()),
		logger.NewField("delay", delay),
	)
}

func (d *Dispatcher) ackJob(ctx context.Context, log handlerLogger, job *entities.DispatchJob) {
	if err := d.queue.Ack(ctx, job); err != nil && !errors.Is(err, ErrJobStateChanged) {
		log.Error("ack job",
			logger.NewField("error", err),
		)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
