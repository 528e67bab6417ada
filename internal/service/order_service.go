package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/domain"
	"github.com/scooter134/Aster-Foodtruck-System-sub000/internal/repository"
)

// EventPublisher pushes order lifecycle events to the broker. Publish
// failures are logged, never surfaced to the customer: the order is
// already committed.
type EventPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
	OrderStatusChanged(ctx context.Context, order *domain.Order, old domain.OrderStatus) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, req domain.UpdateOrderStatusRequest) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
}

// OrderService drives the cart-to-order transition and the status state
// machine.
type OrderService struct {
	orders repository.OrderRepositoryInterface
	menu   repository.MenuRepositoryInterface
	trucks repository.TruckRepositoryInterface
	carts  repository.CartRepositoryInterface
	pub    EventPublisher
	lg     zerolog.Logger

	now func() time.Time
}

func NewOrderService(
	orders repository.OrderRepositoryInterface,
	menu repository.MenuRepositoryInterface,
	trucks repository.TruckRepositoryInterface,
	carts repository.CartRepositoryInterface,
	pub EventPublisher,
	lg zerolog.Logger,
) *OrderService {
	return &OrderService{
		orders: orders,
		menu:   menu,
		trucks: trucks,
		carts:  carts,
		pub:    pub,
		lg:     lg,
		now:    time.Now,
	}
}

func (s *OrderService) Place(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if req.CustomerID <= 0 {
		return nil, domain.NewValidationError("customer_id is required")
	}
	if req.FoodTruckID <= 0 {
		return nil, domain.NewValidationError("food_truck_id is required")
	}
	if req.TimeSlotID <= 0 {
		return nil, domain.NewValidationError("time_slot_id is required")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return nil, domain.NewValidationError("payment_method is required")
	}

	exists, err := s.trucks.Exists(ctx, req.FoodTruckID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTruckNotFound
	}

	// Lines come from the request when given, otherwise from the staged
	// cart; the cart is cleared only after the order commits.
	lines := req.Items
	fromCart := false
	if len(lines) == 0 {
		cart, err := s.carts.Get(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		for _, ci := range cart.Items {
			lines = append(lines, domain.OrderLine{MenuItemID: ci.MenuItemID, Quantity: ci.Quantity})
		}
		fromCart = true
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items, total, err := s.snapshotLines(ctx, req.FoodTruckID, lines)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		OrderNumber:   newOrderNumber(s.now()),
		CustomerID:    req.CustomerID,
		TruckID:       req.FoodTruckID,
		TimeSlotID:    req.TimeSlotID,
		Status:        domain.StatusPending,
		TotalAmount:   total,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	}

	placed, err := s.orders.PlaceOrderTx(ctx, order)
	if err != nil {
		return nil, err
	}

	if fromCart {
		if err := s.carts.Clear(ctx, req.CustomerID); err != nil {
			s.lg.Error().Err(err).Int64("customer_id", req.CustomerID).Msg("cart_clear_failed")
		}
	}
	if s.pub != nil {
		if err := s.pub.OrderCreated(ctx, placed); err != nil {
			s.lg.Error().Err(err).Str("order_number", placed.OrderNumber).Msg("order_created_publish_failed")
		}
	}

	s.lg.Info().
		Str("order_number", placed.OrderNumber).
		Int64("slot_id", placed.TimeSlotID).
		Str("total", placed.TotalAmount.String()).
		Msg("order_placed")
	return placed, nil
}

// snapshotLines validates every line against the truck's menu and
// captures unit prices at placement time.
func (s *OrderService) snapshotLines(ctx context.Context, truckID int64, lines []domain.OrderLine) ([]domain.OrderItem, decimal.Decimal, error) {
	ids := make([]int64, 0, len(lines))
	for _, ln := range lines {
		if ln.Quantity < 1 {
			return nil, decimal.Zero, domain.NewValidationError("invalid quantity for menu item %d", ln.MenuItemID)
		}
		ids = append(ids, ln.MenuItemID)
	}

	menu, err := s.menu.GetByIDs(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	items := make([]domain.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, ln := range lines {
		m, ok := menu[ln.MenuItemID]
		if !ok || m.TruckID != truckID {
			return nil, decimal.Zero, domain.NewValidationError("menu item %d does not belong to this truck", ln.MenuItemID)
		}
		if !m.IsAvailable {
			return nil, decimal.Zero, domain.NewValidationError("menu item %q is not available", m.Name)
		}
		items = append(items, domain.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Quantity:   ln.Quantity,
			UnitPrice:  m.Price,
		})
		total = total.Add(m.Price.Mul(decimal.NewFromInt(int64(ln.Quantity))))
	}
	return items, total, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, req domain.UpdateOrderStatusRequest) (*domain.Order, error) {
	next := domain.OrderStatus(req.Status)
	if !next.Valid() {
		return nil, domain.NewValidationError("unknown status %q", req.Status)
	}

	order, old, err := s.orders.UpdateStatusTx(ctx, id, next, req.CancellationReason)
	if err != nil {
		return nil, err
	}

	if s.pub != nil {
		if err := s.pub.OrderStatusChanged(ctx, order, old); err != nil {
			s.lg.Error().Err(err).Str("order_number", order.OrderNumber).Msg("status_publish_failed")
		}
	}

	s.lg.Info().
		Str("order_number", order.OrderNumber).
		Str("old_status", old.String()).
		Str("new_status", next.String()).
		Msg("order_status_changed")
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.orders.Get(ctx, id)
}

func (s *OrderService) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	if customerID <= 0 {
		return nil, domain.NewValidationError("customer_id is required")
	}
	return s.orders.ListForCustomer(ctx, customerID)
}

func newOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("ORD_%s_%s", t.UTC().Format("20060102"), suffix)
}
