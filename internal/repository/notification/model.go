package notification

import "time"

type NotificationDB struct {
	ID        int64
	UserID    int64
	Type      string
	Message   string
	Read      bool
	CreatedAt time.Time
}
