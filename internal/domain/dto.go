package domain

type CreateSlotRequest struct {
	FoodTruckID int64  `json:"food_truck_id"`
	SlotDate    string `json:"slot_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MaxOrders   *int   `json:"max_orders,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateSlotRequest struct {
	SlotDate  *string `json:"slot_date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	MaxOrders *int    `json:"max_orders,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type GenerateSlotsRequest struct {
	FoodTruckID int64 `json:"food_truck_id"`
	Days        int   `json:"days,omitempty"`
}

type GenerateSlotsResponse struct {
	SlotsCreated int    `json:"slots_created"`
	Message      string `json:"message,omitempty"`
}

type CreateHoursRequest struct {
	FoodTruckID int64  `json:"food_truck_id"`
	DayOfWeek   *int   `json:"day_of_week"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateHoursRequest struct {
	OpenTime  *string `json:"open_time,omitempty"`
	CloseTime *string `json:"close_time,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type OrderLine struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}

// CreateOrderRequest places an order against a chosen time slot. When
// Items is empty the customer's staged cart is used instead and cleared
// on success.
type CreateOrderRequest struct {
	CustomerID    int64       `json:"customer_id"`
	FoodTruckID   int64       `json:"food_truck_id"`
	TimeSlotID    int64       `json:"time_slot_id"`
	PaymentMethod string      `json:"payment_method"`
	Items         []OrderLine `json:"items,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}

type UpsertCartItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
}
