package delivery

import "time"

type DeliveryDB struct {
	ID        int64
	OrderID   string
	DriverID  int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
