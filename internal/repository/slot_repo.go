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

type SlotFilter struct {
	TruckID *int64
	Date    *string
	Active  *bool
}

type SlotPatch struct {
	SlotDate  *string
	StartTime *string
	EndTime   *string
	MaxOrders *int
	IsActive  *bool
}

type SlotRepositoryInterface interface {
	Create(ctx context.Context, slot domain.TimeSlot) (*domain.TimeSlot, error)
	BulkInsert(ctx context.Context, slots []domain.TimeSlot) (int, error)
	List(ctx context.Context, f SlotFilter) ([]domain.TimeSlot, error)
	ListAvailable(ctx context.Context, truckID int64, date *string) ([]domain.TimeSlot, error)
	Get(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, p SlotPatch) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
	Increment(ctx context.Context, id int64) (*domain.TimeSlot, error)
	Decrement(ctx context.Context, id int64) error
}

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) SlotRepositoryInterface {
	return &SlotRepository{pool: pool}
}

const slotColumns = `id, truck_id, to_char(slot_date,'YYYY-MM-DD'),
	to_char(start_time,'HH24:MI'), to_char(end_time,'HH24:MI'),
	max_orders, current_orders, is_active`

func scanSlot(row pgx.Row) (*domain.TimeSlot, error) {
	var s domain.TimeSlot
	err := row.Scan(&s.ID, &s.TruckID, &s.SlotDate, &s.StartTime, &s.EndTime,
		&s.MaxOrders, &s.CurrentOrders, &s.IsActive)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepository) Create(ctx context.Context, slot domain.TimeSlot) (*domain.TimeSlot, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO time_slots (truck_id, slot_date, start_time, end_time, max_orders, current_orders, is_active, created_at, updated_at)
		VALUES ($1, $2::date, $3::time, $4::time, $5, 0, $6, now(), now())
		RETURNING `+slotColumns,
		slot.TruckID, slot.SlotDate, slot.StartTime, slot.EndTime, slot.MaxOrders, slot.IsActive)

	created, err := scanSlot(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.NewForeignKeyError("food_truck_id")
		}
		return nil, fmt.Errorf("failed to insert time slot: %w", err)
	}
	return created, nil
}

// BulkInsert writes generated slots, silently skipping rows that already
// exist for the same (truck, date, start). Returns the number actually
// inserted so re-generation stays idempotent.
func (r *SlotRepository) BulkInsert(ctx context.Context, slots []domain.TimeSlot) (int, error) {
	created := 0
	for _, s := range slots {
		tag, err := r.pool.Exec(ctx, `
			INSERT INTO time_slots (truck_id, slot_date, start_time, end_time, max_orders, current_orders, is_active, created_at, updated_at)
			VALUES ($1, $2::date, $3::time, $4::time, $5, 0, $6, now(), now())
			ON CONFLICT (truck_id, slot_date, start_time) DO NOTHING
		`, s.TruckID, s.SlotDate, s.StartTime, s.EndTime, s.MaxOrders, s.IsActive)
		if err != nil {
			return created, fmt.Errorf("failed to insert generated slot: %w", err)
		}
		created += int(tag.RowsAffected())
	}
	return created, nil
}

func (r *SlotRepository) List(ctx context.Context, f SlotFilter) ([]domain.TimeSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM time_slots WHERE 1=1`
	args := []any{}
	if f.TruckID != nil {
		args = append(args, *f.TruckID)
		query += fmt.Sprintf(" AND truck_id=$%d", len(args))
	}
	if f.Date != nil {
		args = append(args, *f.Date)
		query += fmt.Sprintf(" AND slot_date=$%d::date", len(args))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		query += fmt.Sprintf(" AND is_active=$%d", len(args))
	}
	query += " ORDER BY slot_date, start_time"

	return r.querySlots(ctx, query, args...)
}

// ListAvailable returns active slots with remaining capacity. Without an
// explicit date only today and future dates are considered.
func (r *SlotRepository) ListAvailable(ctx context.Context, truckID int64, date *string) ([]domain.TimeSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM time_slots
		WHERE truck_id=$1 AND is_active AND current_orders < max_orders`
	args := []any{truckID}
	if date != nil {
		args = append(args, *date)
		query += " AND slot_date=$2::date"
	} else {
		query += " AND slot_date >= CURRENT_DATE"
	}
	query += " ORDER BY slot_date, start_time"

	return r.querySlots(ctx, query, args...)
}

func (r *SlotRepository) querySlots(ctx context.Context, query string, args ...any) ([]domain.TimeSlot, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time slots: %w", err)
	}
	defer rows.Close()

	var out []domain.TimeSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *SlotRepository) Get(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	s, err := scanSlot(r.pool.QueryRow(ctx, `SELECT `+slotColumns+` FROM time_slots WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time slot: %w", err)
	}
	return s, nil
}

func (r *SlotRepository) Update(ctx context.Context, id int64, p SlotPatch) (*domain.TimeSlot, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE time_slots SET
			slot_date  = COALESCE($2::date, slot_date),
			start_time = COALESCE($3::time, start_time),
			end_time   = COALESCE($4::time, end_time),
			max_orders = COALESCE($5, max_orders),
			is_active  = COALESCE($6, is_active),
			updated_at = now()
		WHERE id=$1
		RETURNING `+slotColumns,
		id, p.SlotDate, p.StartTime, p.EndTime, p.MaxOrders, p.IsActive)

	s, err := scanSlot(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update time slot: %w", err)
	}
	return s, nil
}

// Delete hard-deletes a slot only when no orders reference it.
func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM time_slots
		WHERE id=$1 AND NOT EXISTS (SELECT 1 FROM orders WHERE time_slot_id=$1)
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete time slot: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	// nothing deleted: missing slot or referencing orders
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM time_slots WHERE id=$1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check time slot: %w", err)
	}
	if !exists {
		return domain.ErrSlotNotFound
	}
	return domain.ErrSlotHasOrders
}

// Increment reserves one unit of capacity with a single conditional
// update; the row lock makes concurrent bookings race-free.
func (r *SlotRepository) Increment(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE time_slots
		SET current_orders = current_orders + 1, updated_at = now()
		WHERE id=$1 AND is_active AND current_orders < max_orders
		RETURNING `+slotColumns, id)

	s, err := scanSlot(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, diagnoseIncrementFailure(ctx, r.pool, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to increment slot orders: %w", err)
	}
	return s, nil
}

// Decrement releases one unit of capacity, clamped at zero.
func (r *SlotRepository) Decrement(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE time_slots
		SET current_orders = GREATEST(current_orders - 1, 0), updated_at = now()
		WHERE id=$1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to decrement slot orders: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}

// queryer covers both the pool and an open transaction.
type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// diagnoseIncrementFailure distinguishes why the conditional update
// matched no rows: missing slot, disabled slot, or full slot.
func diagnoseIncrementFailure(ctx context.Context, q queryer, id int64) error {
	var active bool
	var current, max int
	err := q.QueryRow(ctx, `SELECT is_active, current_orders, max_orders FROM time_slots WHERE id=$1`, id).
		Scan(&active, &current, &max)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrSlotNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to inspect time slot: %w", err)
	}
	if !active {
		return domain.ErrSlotInactive
	}
	return domain.ErrCapacityExceeded
}
