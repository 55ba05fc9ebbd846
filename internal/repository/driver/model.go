package driver

import "time"

type DriverDB struct {
	ID          int64
	UserID      int64
	PlateNumber string
	Approval    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
