package entities

import "time"

// DriverLocation — одна запись из append-only ленты координат водителя.
// Актуальная позиция = самая свежая запись.
type DriverLocation struct {
	ID         int64
	DriverID   int64
	Lat        float64
	Lon        float64
	RecordedAt time.Time
}

// Candidate — водитель, прошедший фильтры локатора, с расстоянием до точки забора.
type Candidate struct {
	DriverID       int64
	DistanceMeters float64
	RecordedAt     time.Time
}
