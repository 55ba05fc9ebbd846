package notification

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет уведомление. Движок диспетчеризации после создания записи
// к ней не возвращается: флаг прочтения обслуживает клиентская сторона.
func (r *Repository) Create(ctx context.Context, userID int64, notificationType entities.NotificationType, message string) (*entities.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, type, message, read)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, user_id, type, message, read, created_at
	`

	var notificationDB NotificationDB
	err := r.querier.QueryRow(ctx, query, userID, notificationType.String(), message).Scan(
		&notificationDB.ID,
		&notificationDB.UserID,
		&notificationDB.Type,
		&notificationDB.Message,
		&notificationDB.Read,
		&notificationDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationDB), nil
}
