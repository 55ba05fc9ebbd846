package driverlocation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/locator"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append добавляет запись в ленту координат. Лента append-only: записи никогда
// не обновляются, устаревшие вычищаются фоновой задачей.
func (r *Repository) Append(ctx context.Context, driverID int64, lat, lon float64, recordedAt time.Time) (*entities.DriverLocation, error) {
	query := `
		INSERT INTO driver_locations (driver_id, lat, lon, recorded_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, driver_id, lat, lon, recorded_at
	`

	var locationDB DriverLocationDB
	err := r.querier.QueryRow(ctx, query, driverID, lat, lon, recordedAt).Scan(
		&locationDB.ID,
		&locationDB.DriverID,
		&locationDB.Lat,
		&locationDB.Lon,
		&locationDB.RecordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver location repository append error: %w", err)
	}

	return ToDomain(&locationDB), nil
}

func (r *Repository) MostRecentFor(ctx context.Context, driverID int64) (*entities.DriverLocation, error) {
	query := `
		SELECT id, driver_id, lat, lon, recorded_at
		FROM driver_locations
		WHERE driver_id = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`

	var locationDB DriverLocationDB
	err := r.querier.QueryRow(ctx, query, driverID).Scan(
		&locationDB.ID,
		&locationDB.DriverID,
		&locationDB.Lat,
		&locationDB.Lon,
		&locationDB.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, locator.ErrNoLocationFix
		}
		return nil, fmt.Errorf("unexpected driver location repository get error: %w", err)
	}

	return ToDomain(&locationDB), nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM driver_locations
		WHERE recorded_at < $1
	`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver location repository delete error: %w", err)
	}

	return result.RowsAffected(), nil
}
