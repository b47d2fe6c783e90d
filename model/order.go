package model

import (
	"time"

	"github.com/easyfind/storefront/constant"
)

type CompleteOrderRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

type CompleteOrderResponse struct {
	Success bool   `json:"success"`
	OrderID uint64 `json:"orderId"`
}

type SavePhoneRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	PhoneTail string `json:"phone_tail" validate:"required"`
}

type SavePhoneResponse struct {
	Success bool   `json:"success"`
	OrderID uint64 `json:"orderId"`
}

// OrderRow is the orders table row.
type OrderRow struct {
	OrderID   uint64               `db:"order_id"`
	Status    constant.OrderStatus `db:"status"`
	SessionID string               `db:"session_id"`
	Phone     *string              `db:"phone"`
	OrderDate *time.Time           `db:"order_date"`
}

// ReservationSummary is one completed order in the phone-tail lookup: order
// metadata plus aggregates computed over its items.
type ReservationSummary struct {
	OrderID               uint64    `db:"order_id" json:"order_id"`
	OrderDate             time.Time `db:"order_date" json:"order_date"`
	RepresentativeProduct string    `db:"representative_product" json:"representative_product"`
	TotalAmount           int64     `db:"total_amount" json:"total_amount"`
	TotalQuantity         int64     `db:"total_quantity" json:"total_quantity"`
}

type ReservationResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Orders  []ReservationSummary `json:"orders,omitempty"`
}

type OrderDetailItem struct {
	ProductName  string  `db:"product_name" json:"name"`
	Author       *string `db:"author" json:"author,omitempty"`
	PricePerItem int64   `db:"price_per_item" json:"price"`
	Quantity     int     `db:"quantity" json:"quantity"`
}

type OrderDetailResponse struct {
	Success     bool              `json:"success"`
	OrderID     uint64            `json:"order_id"`
	OrderDate   time.Time         `json:"order_date"`
	TotalAmount int64             `json:"total_amount"`
	Items       []OrderDetailItem `json:"items"`
	QRPayload   string            `json:"qr_payload"`
	QR          string            `json:"qr"`
}
