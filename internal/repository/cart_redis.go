package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
)

// CartRepositoryInterface is the transient staging store for cart lines.
// Carts never become part of an order's permanent history.
type CartRepositoryInterface interface {
	Get(ctx context.Context, customerID int64) (*domain.Cart, error)
	SetItem(ctx context.Context, customerID, menuItemID int64, quantity int) error
	Clear(ctx context.Context, customerID int64) error
}

type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) CartRepositoryInterface {
	return &CartRepository{client: client}
}

func cartKey(customerID int64) string {
	return fmt.Sprintf("cart:%d:items", customerID)
}

func (r *CartRepository) Get(ctx context.Context, customerID int64) (*domain.Cart, error) {
	fields, err := r.client.HGetAll(ctx, cartKey(customerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	cart := &domain.Cart{CustomerID: customerID}
	for itemIDStr, qtyStr := range fields {
		itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid cart field %q: %w", itemIDStr, err)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity for item %s: %w", itemIDStr, err)
		}
		if qty > 0 {
			cart.Items = append(cart.Items, domain.CartItem{MenuItemID: itemID, Quantity: qty})
		}
	}
	return cart, nil
}

// SetItem stores the absolute quantity for one menu item; zero or
// negative removes the line.
func (r *CartRepository) SetItem(ctx context.Context, customerID, menuItemID int64, quantity int) error {
	key := cartKey(customerID)
	field := strconv.FormatInt(menuItemID, 10)

	if quantity <= 0 {
		if err := r.client.HDel(ctx, key, field).Err(); err != nil {
			return fmt.Errorf("failed to remove cart item: %w", err)
		}
		return nil
	}
	if err := r.client.HSet(ctx, key, field, quantity).Err(); err != nil {
		return fmt.Errorf("failed to set cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, customerID int64) error {
	if err := r.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
