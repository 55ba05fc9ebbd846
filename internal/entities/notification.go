package entities

import "time"

type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Message   string
	Read      bool
	CreatedAt time.Time
}

type NotificationType string

const (
	NotificationDriverAssigned NotificationType = "driver_assigned"
	NotificationDeliveryTask   NotificationType = "delivery_task"
	NotificationDispatchFailed NotificationType = "dispatch_failed"
)

func (t NotificationType) String() string {
	return string(t)
}
