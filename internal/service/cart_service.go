package service

import (
	"context"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

type CartServiceInterface interface {
	Get(ctx context.Context, customerID int64) (*domain.Cart, error)
	SetItem(ctx context.Context, customerID int64, req domain.UpsertCartItemRequest) error
	Clear(ctx context.Context, customerID int64) error
}

type CartService struct {
	carts repository.CartRepositoryInterface
	menu  repository.MenuRepositoryInterface
}

func NewCartService(carts repository.CartRepositoryInterface, menu repository.MenuRepositoryInterface) *CartService {
	return &CartService{carts: carts, menu: menu}
}

func (s *CartService) Get(ctx context.Context, customerID int64) (*domain.Cart, error) {
	if customerID <= 0 {
		return nil, domain.NewValidationError("customer_id is required")
	}
	return s.carts.Get(ctx, customerID)
}

func (s *CartService) SetItem(ctx context.Context, customerID int64, req domain.UpsertCartItemRequest) error {
	if customerID <= 0 {
		return domain.NewValidationError("customer_id is required")
	}
	if req.MenuItemID <= 0 {
		return domain.NewValidationError("menu_item_id is required")
	}
	if req.Quantity > 0 {
		// staging still checks the item exists; truck match is enforced
		// again at placement
		if _, err := s.menu.Get(ctx, req.MenuItemID); err != nil {
			return err
		}
	}
	return s.carts.SetItem(ctx, customerID, req.MenuItemID, req.Quantity)
}

func (s *CartService) Clear(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return domain.NewValidationError("customer_id is required")
	}
	return s.carts.Clear(ctx, customerID)
}
