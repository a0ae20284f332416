package models

import "time"

type OrderLine struct {
	ID              int       `json:"id"`
	OrderID         int       `json:"order_id"`
	ProductName     string    `json:"product_name"`
	SKU             string    `json:"sku"`
	Quantity        int       `json:"quantity"`
	LifecycleStatus string    `json:"lifecycle_status"`        // 'new', 'manufacture', 'mfg_qc', 'packaging', 'pkg_qc', 'shipping', 'shipped', 'delivered'
	MfgQcStatus     *string   `json:"mfg_qc_status,omitempty"` // 'pending', 'in_progress', 'approved', 'rejected'
	PkgQcStatus     *string   `json:"pkg_qc_status,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateOrderLineRequest represents one line in an order creation request
type CreateOrderLineRequest struct {
	ProductName string `json:"product_name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
}

// UpdateLineStatusRequest represents the request body for a lifecycle transition
type UpdateLineStatusRequest struct {
	LifecycleStatus string `json:"lifecycle_status"`
}
