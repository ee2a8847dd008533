package model

import (
	"encoding/json"
	"time"
)

// OrderStatus is a free-form lifecycle label set by the admin.
type OrderStatus string

// OrderStatusPending is assigned to every freshly placed order.
const OrderStatusPending OrderStatus = "Pending"

// Order describes a customer purchase. Only Status changes after creation.
type Order struct {
	ID      string          `json:"id"`
	Items   json.RawMessage `json:"items"`
	Total   float64         `json:"total"`
	Address string          `json:"address"`
	Status  OrderStatus     `json:"status"`
	Date    time.Time       `json:"date"`
}
