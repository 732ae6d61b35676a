package types

import "time"

// OrderStatus is the backend-owned lifecycle state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderAccepted   OrderStatus = "accepted"
	OrderDelivering OrderStatus = "delivering"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is expected.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderAccepted, OrderDelivering, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is one requested line of cargo.
type OrderItem struct {
	CargoID  CargoID `json:"cargoId"`
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity"`
}

// Order is a client's delivery request.
type Order struct {
	ID        OrderID     `json:"id"`
	ClientID  UserID      `json:"clientId"`
	Items     []OrderItem `json:"items"`
	Address   string      `json:"address"`
	Notes     string      `json:"notes,omitempty"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewOrder is the body of a place-order request.
type NewOrder struct {
	Items   []OrderItem `json:"items"`
	Address string      `json:"address"`
	Notes   string      `json:"notes,omitempty"`
}
