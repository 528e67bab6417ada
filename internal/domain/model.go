package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperatingHour is a truck's recurring weekly open/close window for one
// day of the week (0=Sunday .. 6=Saturday). Times are "HH:MM".
type OperatingHour struct {
	ID        int64  `json:"id"`
	TruckID   int64  `json:"food_truck_id"`
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsActive  bool   `json:"is_active"`
}

// TimeSlot is a bookable pickup window for a truck on a concrete date.
type TimeSlot struct {
	ID            int64  `json:"id"`
	TruckID       int64  `json:"food_truck_id"`
	SlotDate      string `json:"slot_date"` // YYYY-MM-DD
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	MaxOrders     int    `json:"max_orders"`
	CurrentOrders int    `json:"current_orders"`
	IsActive      bool   `json:"is_active"`
}

func (s TimeSlot) Remaining() int { return s.MaxOrders - s.CurrentOrders }

func (s TimeSlot) IsFull() bool { return s.CurrentOrders >= s.MaxOrders }

type MenuItem struct {
	ID          int64           `json:"id"`
	TruckID     int64           `json:"food_truck_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
}

// CartItem is one staged line in a customer's cart. Carts are transient:
// they live in Redis and are cleared on successful order placement.
type CartItem struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

type Cart struct {
	CustomerID int64      `json:"customer_id"`
	Items      []CartItem `json:"items"`
}

type Order struct {
	ID                 int64           `json:"id"`
	OrderNumber        string          `json:"order_number"`
	CustomerID         int64           `json:"customer_id"`
	TruckID            int64           `json:"food_truck_id"`
	TimeSlotID         int64           `json:"time_slot_id"`
	Status             OrderStatus     `json:"status"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	PaymentMethod      string          `json:"payment_method"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	Items              []OrderItem     `json:"items"`
}

// OrderItem captures name and unit price at placement time; later menu
// edits never change an existing order.
type OrderItem struct {
	ID         int64           `json:"id"`
	OrderID    int64           `json:"order_id"`
	MenuItemID int64           `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}
