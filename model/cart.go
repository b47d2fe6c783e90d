package model

// AddItemRequest adds a product to the session's cart.
type AddItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// CartItem is one order_items row joined with product/book display columns.
type CartItem struct {
	OrderItemID  uint64  `db:"order_item_id" json:"order_item_id"`
	ProductID    uint64  `db:"product_id" json:"product_id"`
	Quantity     int     `db:"quantity" json:"quantity"`
	PricePerItem int64   `db:"price_per_item" json:"price_per_item"`
	ProductName  string  `db:"product_name" json:"product_name"`
	ImageURL     string  `db:"image_url" json:"image_url"`
	ProductType  string  `db:"product_type" json:"product_type"`
	Author       *string `db:"author" json:"author,omitempty"`
	Publisher    *string `db:"publisher" json:"publisher,omitempty"`
}

type CartResponse struct {
	Items     []CartItem `json:"items"`
	SessionID string     `json:"session_id"`
}

// OrderItemRow is the (order, product) line item as stored, used when the
// cart manager decides between insert and quantity accumulation.
type OrderItemRow struct {
	OrderItemID  uint64 `db:"order_item_id"`
	OrderID      uint64 `db:"order_id"`
	ProductID    uint64 `db:"product_id"`
	Quantity     int    `db:"quantity"`
	PricePerItem int64  `db:"price_per_item"`
}
