package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
)

type OrderRepositoryInterface interface {
	// PlaceOrderTx reserves slot capacity and inserts the order with its
	// items in one transaction. Any failure rolls back the reservation.
	PlaceOrderTx(ctx context.Context, order domain.Order) (*domain.Order, error)
	// UpdateStatusTx validates the transition under a row lock and, for
	// cancellations, releases the slot in the same transaction.
	UpdateStatusTx(ctx context.Context, id int64, next domain.OrderStatus, reason *string) (*domain.Order, domain.OrderStatus, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) PlaceOrderTx(ctx context.Context, order domain.Order) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Reserve capacity first: one conditional write, no read-then-write.
	tag, err := tx.Exec(ctx, `
		UPDATE time_slots
		SET current_orders = current_orders + 1, updated_at = now()
		WHERE id=$1 AND is_active AND current_orders < max_orders
	`, order.TimeSlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve slot capacity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, diagnoseIncrementFailure(ctx, tx, order.TimeSlotID)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, customer_id, truck_id, time_slot_id, status, total_amount, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, now(), now())
		RETURNING id, created_at
	`, order.OrderNumber, order.CustomerID, order.TruckID, order.TimeSlotID,
		string(order.Status), order.TotalAmount.String(), order.PaymentMethod).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.NewForeignKeyError("time_slot_id")
		}
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price, created_at)
			VALUES ($1, $2, $3, $4, $5::numeric, now())
			RETURNING id
		`, item.OrderID, item.MenuItemID, item.Name, item.Quantity, item.UnitPrice.String()).Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}
	return &order, nil
}

func (r *OrderRepository) UpdateStatusTx(ctx context.Context, id int64, next domain.OrderStatus, reason *string) (*domain.Order, domain.OrderStatus, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var current string
	var slotID int64
	err = tx.QueryRow(ctx, `SELECT status, time_slot_id FROM orders WHERE id=$1 FOR UPDATE`, id).
		Scan(&current, &slotID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, "", domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to lock order: %w", err)
	}

	old := domain.OrderStatus(current)
	if !old.CanTransitionTo(next) {
		return nil, "", domain.NewTransitionError(old, next)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE orders SET status=$2, cancellation_reason=COALESCE($3, cancellation_reason), updated_at=now()
		WHERE id=$1
	`, id, string(next), reason); err != nil {
		return nil, "", fmt.Errorf("failed to update order status: %w", err)
	}

	// Cancellation frees the reserved capacity atomically with the
	// status change.
	if next == domain.StatusCancelled {
		if _, err := tx.Exec(ctx, `
			UPDATE time_slots
			SET current_orders = GREATEST(current_orders - 1, 0), updated_at = now()
			WHERE id=$1
		`, slotID); err != nil {
			return nil, "", fmt.Errorf("failed to release slot capacity: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, "", fmt.Errorf("failed to commit status transaction: %w", err)
	}

	order, err := r.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	return order, old, nil
}

func (r *OrderRepository) Get(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	var status, total string
	err := r.pool.QueryRow(ctx, `
		SELECT id, order_number, customer_id, truck_id, time_slot_id, status,
		       total_amount::text, payment_method, cancellation_reason, created_at
		FROM orders WHERE id=$1
	`, id).Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.TruckID, &o.TimeSlotID,
		&status, &total, &o.PaymentMethod, &o.CancellationReason, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	o.Status = domain.OrderStatus(status)
	if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
		return nil, fmt.Errorf("invalid stored total for order %d: %w", id, err)
	}

	items, err := r.itemsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepository) itemsFor(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, menu_item_id, name, quantity, unit_price::text
		FROM order_items WHERE order_id=$1 ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		var price string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.MenuItemID, &it.Name, &it.Quantity, &price); err != nil {
			return nil, err
		}
		if it.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("invalid stored unit price: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderRepository) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_number, customer_id, truck_id, time_slot_id, status,
		       total_amount::text, payment_method, cancellation_reason, created_at
		FROM orders WHERE customer_id=$1 ORDER BY created_at DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		var status, total string
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.TruckID, &o.TimeSlotID,
			&status, &total, &o.PaymentMethod, &o.CancellationReason, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Status = domain.OrderStatus(status)
		if o.TotalAmount, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("invalid stored total for order %d: %w", o.ID, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
