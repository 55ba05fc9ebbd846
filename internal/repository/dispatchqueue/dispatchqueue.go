package dispatchqueue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/dispatcher"
)

// Repository — долговечная очередь заявок на диспетчеризацию поверх Postgres.
// Конкурентные воркеры разводятся через FOR UPDATE SKIP LOCKED, доставка
// at-least-once обеспечивается арендой: не подтверждённая вовремя заявка
// возвращается в очередь.
type Repository struct {
	querier Querier
	lease   time.Duration
}

func New(querier Querier, lease time.Duration) *Repository {
	return &Repository{
		querier: querier,
		lease:   lease,
	}
}

// Enqueue ставит заявку на заказ. Частичный уникальный индекс по order_id для
// живых заявок даёт дедупликацию: повторная постановка заказа в полёте — ErrDuplicateJob.
func (r *Repository) Enqueue(ctx context.Context, orderID, merchantID string) error {
	query := `
		INSERT INTO dispatch_jobs (order_id, merchant_id, attempt, status, visible_after)
		VALUES ($1, $2, 0, 'queued', NOW())
		ON CONFLICT (order_id) WHERE status IN ('queued', 'processing') DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, orderID, merchantID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return dispatcher.ErrDuplicateJob
		}
		return fmt.Errorf("unexpected dispatch queue enqueue error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatcher.ErrDuplicateJob
	}

	return nil
}

// Dequeue забирает одну видимую заявку и берёт её в обработку под аренду.
// SKIP LOCKED не даёт двум воркерам забрать одну и ту же заявку.
func (r *Repository) Dequeue(ctx context.Context) (*entities.DispatchJob, error) {
	query := `
		UPDATE dispatch_jobs
		SET status = 'processing',
		    locked_until = NOW() + $1,
		    updated_at = NOW()
		WHERE id = (
			SELECT id
			FROM dispatch_jobs
			WHERE status = 'queued' AND visible_after <= NOW()
			ORDER BY visible_after ASC, id ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, order_id, merchant_id, attempt, status, visible_after, locked_until, created_at, updated_at
	`

	var jobDB DispatchJobDB
	err := r.querier.QueryRow(ctx, query, r.lease).Scan(
		&jobDB.ID,
		&jobDB.OrderID,
		&jobDB.MerchantID,
		&jobDB.Attempt,
		&jobDB.Status,
		&jobDB.VisibleAfter,
		&jobDB.LockedUntil,
		&jobDB.CreatedAt,
		&jobDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatcher.ErrNoJob
		}
		return nil, fmt.Errorf("unexpected dispatch queue dequeue error: %w", err)
	}

	return ToDomain(&jobDB), nil
}

// Ack подтверждает обработанную заявку. Условие по статусу страхует от гонки
// с reaper-ом, уже вернувшим просроченную заявку в очередь.
func (r *Repository) Ack(ctx context.Context, job *entities.DispatchJob) error {
	query := `
		UPDATE dispatch_jobs
		SET status = 'done',
		    updated_at = NOW()
		WHERE id = $1 AND status = 'processing'
	`

	result, err := r.querier.Exec(ctx, query, job.ID)
	if err != nil {
		return fmt.Errorf("unexpected dispatch queue ack error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatcher.ErrJobStateChanged
	}

	return nil
}

// Retry возвращает заявку в очередь с инкрементом попытки и отложенной видимостью.
func (r *Repository) Retry(ctx context.Context, job *entities.DispatchJob, delay time.Duration) error {
	query := `
		UPDATE dispatch_jobs
		SET status = 'queued',
		    attempt = attempt + 1,
		    visible_after = NOW() + $1,
		    updated_at = NOW()
		WHERE id = $2 AND status = 'processing'
	`

	result, err := r.querier.Exec(ctx, query, delay, job.ID)
	if err != nil {
		return fmt.Errorf("unexpected dispatch queue retry error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatcher.ErrJobStateChanged
	}

	return nil
}

// Fail помечает заявку как окончательно неуспешную. Терминальный статус,
// уже зафиксированные изменения заказа не откатываются.
func (r *Repository) Fail(ctx context.Context, job *entities.DispatchJob) error {
	query := `
		UPDATE dispatch_jobs
		SET status = 'failed',
		    updated_at = NOW()
		WHERE id = $1 AND status = 'processing'
	`

	result, err := r.querier.Exec(ctx, query, job.ID)
	if err != nil {
		return fmt.Errorf("unexpected dispatch queue fail error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return dispatcher.ErrJobStateChanged
	}

	return nil
}

// ReleaseExpired возвращает в очередь заявки, чья аренда обработки истекла:
// воркер упал или не уложился в таймаут. Попытка не инкрементируется —
// передоставка инфраструктурная, а не бизнесовая.
func (r *Repository) ReleaseExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE dispatch_jobs
		SET status = 'queued',
		    visible_after = NOW(),
		    updated_at = NOW()
		WHERE status = 'processing' AND locked_until < NOW()
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected dispatch queue release error: %w", err)
	}

	return result.RowsAffected(), nil
}
