package entities

import "time"

type Order struct {
	ID         string
	MerchantID string
	CustomerID int64
	Status     OrderStatusType
	DriverID   *int64
	PickupLat  float64
	PickupLon  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderStatusType string

const (
	OrderPreparing      OrderStatusType = "preparing"
	OrderReadyForPickup OrderStatusType = "ready_for_pickup"
	OrderAssigned       OrderStatusType = "assigned"
	OrderCancelled      OrderStatusType = "cancelled"
	OrderCompleted      OrderStatusType = "completed"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Dispatchable сообщает, допускает ли текущий статус назначение водителя.
func (s OrderStatusType) Dispatchable() bool {
	return s == OrderReadyForPickup
}
