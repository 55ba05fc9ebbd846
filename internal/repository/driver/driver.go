package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `
		SELECT id, user_id, plate_number, approval, is_available, created_at, updated_at
		FROM drivers
		WHERE id = $1
	`

	var driverDB DriverDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&driverDB.ID,
		&driverDB.UserID,
		&driverDB.PlateNumber,
		&driverDB.Approval,
		&driverDB.IsAvailable,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository get error: %w", err)
	}

	return ToDomain(&driverDB), nil
}

func (r *Repository) FindAvailableApproved(ctx context.Context) ([]entities.Driver, error) {
	query := `
		SELECT id, user_id, plate_number, approval, is_available, created_at, updated_at
		FROM drivers
		WHERE is_available = TRUE AND approval = 'approved'
		ORDER BY id ASC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository find error: %w", err)
	}
	defer rows.Close()

	var drivers []entities.Driver
	for rows.Next() {
		var driverDB DriverDB
		err := rows.Scan(
			&driverDB.ID,
			&driverDB.UserID,
			&driverDB.PlateNumber,
			&driverDB.Approval,
			&driverDB.IsAvailable,
			&driverDB.CreatedAt,
			&driverDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected driver repository scan error: %w", err)
		}
		drivers = append(drivers, *ToDomain(&driverDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected driver repository rows error: %w", err)
	}

	return drivers, nil
}

// SetAvailability — compare-and-set по флагу доступности. Ноль затронутых строк
// означает проигранную гонку: флаг уже не в ожидаемом состоянии.
func (r *Repository) SetAvailability(ctx context.Context, driverID int64, from, to bool) error {
	builder := qb.
		Update("drivers").
		Set("is_available", to).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": driverID, "is_available": from})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected driver repository build query error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected driver repository set availability error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return assignment.ErrAvailabilityConflict
	}

	return nil
}
