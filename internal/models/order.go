package models

import "time"

type Order struct {
	ID           int        `json:"id"`
	Reference    string     `json:"reference"` // Human-facing order number, e.g. ORD-2026-00412
	CustomerName string     `json:"customer_name"`
	SellerID     *int       `json:"seller_id,omitempty"` // Nil once the seller account is deleted
	SellerName   string     `json:"seller_name,omitempty"` // Denormalized for display
	Status       string     `json:"status"`                // 'active', 'cancelled', 'closed'
	Notes        string     `json:"notes,omitempty"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	Reference    string                   `json:"reference"`
	CustomerName string                   `json:"customer_name"`
	Notes        string                   `json:"notes"`
	Lines        []CreateOrderLineRequest `json:"lines"`
}

// UpdateOrderRequest represents the request body for updating an order
type UpdateOrderRequest struct {
	CustomerName string `json:"customer_name"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}
