package order

import "time"

type OrderDB struct {
	ID         string
	MerchantID string
	CustomerID int64
	Status     string
	DriverID   *int64
	PickupLat  float64
	PickupLon  float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
