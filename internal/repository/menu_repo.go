package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
)

// MenuRepositoryInterface is a read-only collaborator: menu CRUD itself
// lives outside this core.
type MenuRepositoryInterface interface {
	Get(ctx context.Context, id int64) (*domain.MenuItem, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.MenuItem, error)
}

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) MenuRepositoryInterface {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) Get(ctx context.Context, id int64) (*domain.MenuItem, error) {
	var m domain.MenuItem
	var price string
	err := r.pool.QueryRow(ctx, `
		SELECT id, truck_id, name, price::text, is_available FROM menu_items WHERE id=$1
	`, id).Scan(&m.ID, &m.TruckID, &m.Name, &price, &m.IsAvailable)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NewValidationError("menu item %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	if m.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("invalid stored price for menu item %d: %w", id, err)
	}
	return &m, nil
}

func (r *MenuRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, truck_id, name, price::text, is_available FROM menu_items WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	out := make(map[int64]domain.MenuItem, len(ids))
	for rows.Next() {
		var m domain.MenuItem
		var price string
		if err := rows.Scan(&m.ID, &m.TruckID, &m.Name, &price, &m.IsAvailable); err != nil {
			return nil, err
		}
		if m.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("invalid stored price for menu item %d: %w", m.ID, err)
		}
		out[m.ID] = m
	}
	return out, rows.Err()
}
