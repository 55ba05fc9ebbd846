package dispatchqueue

import "time"

type DispatchJobDB struct {
	ID           int64
	OrderID      string
	MerchantID   string
	Attempt      int
	Status       string
	VisibleAfter time.Time
	LockedUntil  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
