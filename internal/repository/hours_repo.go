package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
)

type HoursPatch struct {
	OpenTime  *string
	CloseTime *string
	IsActive  *bool
}

type HoursRepositoryInterface interface {
	Create(ctx context.Context, h domain.OperatingHour) (*domain.OperatingHour, error)
	Get(ctx context.Context, id int64) (*domain.OperatingHour, error)
	ListForTruck(ctx context.Context, truckID int64) ([]domain.OperatingHour, error)
	ListActiveForTruck(ctx context.Context, truckID int64) ([]domain.OperatingHour, error)
	Update(ctx context.Context, id int64, p HoursPatch) (*domain.OperatingHour, error)
	Delete(ctx context.Context, id int64) error
}

type HoursRepository struct {
	pool *pgxpool.Pool
}

func NewHoursRepository(pool *pgxpool.Pool) HoursRepositoryInterface {
	return &HoursRepository{pool: pool}
}

const hoursColumns = `id, truck_id, day_of_week,
	to_char(open_time,'HH24:MI'), to_char(close_time,'HH24:MI'), is_active`

func scanHours(row pgx.Row) (*domain.OperatingHour, error) {
	var h domain.OperatingHour
	err := row.Scan(&h.ID, &h.TruckID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.IsActive)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HoursRepository) Create(ctx context.Context, h domain.OperatingHour) (*domain.OperatingHour, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO operating_hours (truck_id, day_of_week, open_time, close_time, is_active, created_at, updated_at)
		VALUES ($1, $2, $3::time, $4::time, $5, now(), now())
		RETURNING `+hoursColumns,
		h.TruckID, h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsActive)

	created, err := scanHours(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.NewForeignKeyError("food_truck_id")
		}
		return nil, fmt.Errorf("failed to insert operating hours: %w", err)
	}
	return created, nil
}

func (r *HoursRepository) Get(ctx context.Context, id int64) (*domain.OperatingHour, error) {
	h, err := scanHours(r.pool.QueryRow(ctx, `SELECT `+hoursColumns+` FROM operating_hours WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get operating hours: %w", err)
	}
	return h, nil
}

func (r *HoursRepository) ListForTruck(ctx context.Context, truckID int64) ([]domain.OperatingHour, error) {
	return r.queryHours(ctx, `SELECT `+hoursColumns+` FROM operating_hours
		WHERE truck_id=$1 ORDER BY day_of_week, open_time`, truckID)
}

func (r *HoursRepository) ListActiveForTruck(ctx context.Context, truckID int64) ([]domain.OperatingHour, error) {
	return r.queryHours(ctx, `SELECT `+hoursColumns+` FROM operating_hours
		WHERE truck_id=$1 AND is_active ORDER BY day_of_week, open_time`, truckID)
}

func (r *HoursRepository) queryHours(ctx context.Context, query string, args ...any) ([]domain.OperatingHour, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operating hours: %w", err)
	}
	defer rows.Close()

	var out []domain.OperatingHour
	for rows.Next() {
		h, err := scanHours(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *h)
	}
	return out, rows.Err()
}

func (r *HoursRepository) Update(ctx context.Context, id int64, p HoursPatch) (*domain.OperatingHour, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE operating_hours SET
			open_time  = COALESCE($2::time, open_time),
			close_time = COALESCE($3::time, close_time),
			is_active  = COALESCE($4, is_active),
			updated_at = now()
		WHERE id=$1
		RETURNING `+hoursColumns,
		id, p.OpenTime, p.CloseTime, p.IsActive)

	h, err := scanHours(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update operating hours: %w", err)
	}
	return h, nil
}

func (r *HoursRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM operating_hours WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete operating hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHoursNotFound
	}
	return nil
}
