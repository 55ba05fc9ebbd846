package entities

import "time"

type Delivery struct {
	ID        int64
	OrderID   string
	DriverID  int64
	Status    DeliveryStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DeliveryStatusType string

const (
	DeliveryActive    DeliveryStatusType = "active"
	DeliveryCompleted DeliveryStatusType = "completed"
	DeliveryCancelled DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// Terminal — завершённые состояния, после которых водитель снова свободен.
func (s DeliveryStatusType) Terminal() bool {
	return s == DeliveryCompleted || s == DeliveryCancelled
}
