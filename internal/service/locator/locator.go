package locator

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/pkg/geo"
)

type Locator struct {
	drivers           DriverRepository
	locations         LocationRepository
	locationRetention time.Duration
}

func New(drivers DriverRepository, locations LocationRepository, locationRetention time.Duration) *Locator {
	return &Locator{
		drivers:           drivers,
		locations:         locations,
		locationRetention: locationRetention,
	}
}

// FindCandidates возвращает доступных подтверждённых водителей со свежей позицией,
// отсортированных по расстоянию до точки забора. Пустой список — ожидаемый ответ
// "никого нет", а не ошибка.
func (l *Locator) FindCandidates(ctx context.Context, pickup geo.Point, freshness time.Duration) ([]entities.Candidate, error) {
	if !pickup.Valid() {
		return nil, ErrInvalidPickupPoint
	}
	if freshness <= 0 {
		return nil, ErrInvalidFreshnessWindow
	}

	drivers, err := l.drivers.FindAvailableApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("find available drivers: %w", err)
	}

	cutoff := time.Now().UTC().Add(-freshness)

	candidates := make([]entities.Candidate, 0, len(drivers))
	for _, driver := range drivers {
		fix, err := l.locations.MostRecentFor(ctx, driver.ID)
		if err != nil {
			if errors.Is(err, ErrNoLocationFix) {
				continue
			}
			return nil, fmt.Errorf("most recent location for driver %d: %w", driver.ID, err)
		}

		if fix.RecordedAt.Before(cutoff) {
			continue
		}

		candidates = append(candidates, entities.Candidate{
			DriverID:       driver.ID,
			DistanceMeters: geo.Distance(pickup, geo.Point{Lat: fix.Lat, Lon: fix.Lon}),
			RecordedAt:     fix.RecordedAt,
		})
	}

	// ближние первыми, при равном расстоянии — у кого позиция свежее
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].DistanceMeters != candidates[j].DistanceMeters {
			return candidates[i].DistanceMeters < candidates[j].DistanceMeters
		}
		return candidates[i].RecordedAt.After(candidates[j].RecordedAt)
	})

	return candidates, nil
}

// CleanupStaleLocations удаляет записи позиций старше окна хранения.
// Лента координат append-only, без периодической чистки таблица растёт бесконечно.
func (l *Locator) CleanupStaleLocations(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-l.locationRetention)

	rowsAffected, err := l.locations.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("location cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("location cleanup: %w", err)
	}

	return rowsAffected, nil
}
