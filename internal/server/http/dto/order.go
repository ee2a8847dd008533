package dto

import "encoding/json"

// PlaceOrderRequest is the public checkout payload. Items are stored as sent.
type PlaceOrderRequest struct {
	Items   json.RawMessage `json:"items"`
	Total   float64         `json:"total"`
	Address string          `json:"address"`
}

type UpdateOrderRequest struct {
	Status string `json:"status" form:"status"`
}
