package driverlocation

import "time"

type DriverLocationDB struct {
	ID         int64
	DriverID   int64
	Lat        float64
	Lon        float64
	RecordedAt time.Time
}
