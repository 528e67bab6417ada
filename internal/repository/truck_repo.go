package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TruckRepositoryInterface interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type TruckRepository struct {
	pool *pgxpool.Pool
}

func NewTruckRepository(pool *pgxpool.Pool) TruckRepositoryInterface {
	return &TruckRepository{pool: pool}
}

func (r *TruckRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM food_trucks WHERE id=$1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check food truck: %w", err)
	}
	return exists, nil
}
