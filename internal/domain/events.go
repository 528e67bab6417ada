package domain

import "time"

// OrderCreatedMessage is published to the orders topic exchange when an
// order is placed.
type OrderCreatedMessage struct {
	OrderNumber string      `json:"order_number"`
	CustomerID  int64       `json:"customer_id"`
	TruckID     int64       `json:"food_truck_id"`
	TimeSlotID  int64       `json:"time_slot_id"`
	TotalAmount string      `json:"total_amount"`
	Items       []OrderItem `json:"items"`
	Timestamp   time.Time   `json:"timestamp"`
}

// StatusChangedMessage is fanned out to subscribers on every order
// status transition.
type StatusChangedMessage struct {
	OrderNumber string    `json:"order_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	Reason      string    `json:"reason,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
