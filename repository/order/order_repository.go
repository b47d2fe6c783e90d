package order

import (
	"context"
	"database/sql"

	"github.com/easyfind/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	CompletePrepared(ctx context.Context, sessionID string) (int64, error)
	GetLatestCompletedID(ctx context.Context, sessionID string) (uint64, error)
	SetPhone(ctx context.Context, orderID uint64, phoneTail string) error
	FindCompletedByPhoneTail(ctx context.Context, tail string) ([]model.ReservationSummary, error)
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderRow, error)
	ListOrderItems(ctx context.Context, orderID uint64) ([]model.OrderDetailItem, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	completePreparedQuery = `UPDATE orders
SET status = 'completed', order_date = CURRENT_TIMESTAMP
WHERE session_id = ? AND status = 'prepared'`

	latestCompletedQuery = `SELECT order_id FROM orders
WHERE session_id = ? AND status = 'completed'
ORDER BY order_date DESC, order_id DESC
LIMIT 1`

	setPhoneQuery = `UPDATE orders SET phone = ? WHERE order_id = ?`

	// representative product is the item with the lowest order_item_id,
	// so repeated lookups of one order always name the same product.
	findByPhoneTailQuery = `SELECT o.order_id, o.order_date,
COALESCE((SELECT p.product_name FROM order_items oi
          JOIN product p ON oi.product_id = p.product_id
          WHERE oi.order_id = o.order_id
          ORDER BY oi.order_item_id LIMIT 1), '') AS representative_product,
COALESCE((SELECT SUM(oi.quantity * oi.price_per_item) FROM order_items oi WHERE oi.order_id = o.order_id), 0) AS total_amount,
COALESCE((SELECT SUM(oi.quantity) FROM order_items oi WHERE oi.order_id = o.order_id), 0) AS total_quantity
FROM orders o
WHERE o.phone = ? AND o.status = 'completed'
ORDER BY o.order_date DESC, o.order_id DESC`

	getOrderQuery = `SELECT order_id, status, session_id, phone, order_date FROM orders WHERE order_id = ?`

	listOrderItemsQuery = `SELECT p.product_name, b.author, oi.price_per_item, oi.quantity
FROM order_items oi
JOIN product p ON oi.product_id = p.product_id
LEFT JOIN book b ON p.product_id = b.product_id
WHERE oi.order_id = ?
ORDER BY oi.order_item_id`
)

// CompletePrepared moves the session's prepared order to completed, stamping
// the order date, and returns the number of rows updated (0 when the session
// has no prepared order).
func (s *SQL) CompletePrepared(ctx context.Context, sessionID string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, completePreparedQuery, sessionID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetLatestCompletedID returns 0 when the session has no completed order.
func (s *SQL) GetLatestCompletedID(ctx context.Context, sessionID string) (uint64, error) {
	var id uint64
	if err := s.conn.GetContext(ctx, &id, latestCompletedQuery, sessionID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}

func (s *SQL) SetPhone(ctx context.Context, orderID uint64, phoneTail string) error {
	_, err := s.conn.ExecContext(ctx, setPhoneQuery, phoneTail, orderID)
	return err
}

func (s *SQL) FindCompletedByPhoneTail(ctx context.Context, tail string) ([]model.ReservationSummary, error) {
	rows, err := s.conn.QueryxContext(ctx, findByPhoneTailQuery, tail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.ReservationSummary, 0)
	for rows.Next() {
		var o model.ReservationSummary
		if err := rows.StructScan(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetOrder returns nil when the order does not exist.
func (s *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.OrderRow, error) {
	var row model.OrderRow
	if err := s.conn.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *SQL) ListOrderItems(ctx context.Context, orderID uint64) ([]model.OrderDetailItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listOrderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderDetailItem, 0)
	for rows.Next() {
		var it model.OrderDetailItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
