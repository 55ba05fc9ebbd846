package driverlocation

import "dispatch/internal/entities"

func ToDomain(l *DriverLocationDB) *entities.DriverLocation {
	if l == nil {
		return nil
	}
	return &entities.DriverLocation{
		ID:         l.ID,
		DriverID:   l.DriverID,
		Lat:        l.Lat,
		Lon:        l.Lon,
		RecordedAt: l.RecordedAt,
	}
}
