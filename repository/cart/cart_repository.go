package cart

import (
	"context"
	"database/sql"

	"github.com/easyfind/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CartRepository interface {
	FindOrCreatePreparedTx(ctx context.Context, tx *sqlx.Tx, sessionID string) (uint64, error)
	GetItemTx(ctx context.Context, tx *sqlx.Tx, orderID, productID uint64) (*model.OrderItemRow, error)
	InsertItemTx(ctx context.Context, tx *sqlx.Tx, orderID, productID uint64, quantity int, pricePerItem int64) error
	SetQuantityTx(ctx context.Context, tx *sqlx.Tx, orderItemID uint64, quantity int) error
	GetPreparedOrderID(ctx context.Context, sessionID string) (uint64, error)
	ListItems(ctx context.Context, orderID uint64) ([]model.CartItem, error)
	ItemBelongsToSession(ctx context.Context, orderItemID uint64, sessionID string) (bool, error)
	SetQuantity(ctx context.Context, orderItemID uint64, quantity int) error
	DeleteItem(ctx context.Context, orderItemID uint64) error
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	// upsertPreparedOrder relies on the unique index over the generated
	// active_session column (session_id when status = 'prepared'), so two
	// racing first adds from one session converge on the same order row.
	upsertPreparedOrder = "INSERT INTO orders (session_id, status) VALUES (?, 'prepared') " +
		"ON DUPLICATE KEY UPDATE order_id = LAST_INSERT_ID(order_id)"

	getItemQuery = `SELECT order_item_id, order_id, product_id, quantity, price_per_item
FROM order_items WHERE order_id = ? AND product_id = ?`

	insertItemQuery = `INSERT INTO order_items (order_id, product_id, quantity, price_per_item) VALUES (?, ?, ?, ?)`

	setQuantityQuery = `UPDATE order_items SET quantity = ? WHERE order_item_id = ?`

	getPreparedOrderQuery = `SELECT order_id FROM orders WHERE session_id = ? AND status = 'prepared' LIMIT 1`

	listItemsQuery = `SELECT oi.order_item_id, oi.product_id, oi.quantity, oi.price_per_item,
p.product_name, p.image_url, p.product_type, b.author, b.publisher
FROM order_items oi
JOIN product p ON oi.product_id = p.product_id
LEFT JOIN book b ON p.product_id = b.product_id
WHERE oi.order_id = ?
ORDER BY oi.order_item_id`

	itemOwnershipQuery = `SELECT oi.order_item_id
FROM order_items oi
JOIN orders o ON oi.order_id = o.order_id
WHERE oi.order_item_id = ? AND o.session_id = ? AND o.status = 'prepared'`

	deleteItemQuery = `DELETE FROM order_items WHERE order_item_id = ?`
)

func (s *SQL) FindOrCreatePreparedTx(ctx context.Context, tx *sqlx.Tx, sessionID string) (uint64, error) {
	res, err := tx.ExecContext(ctx, upsertPreparedOrder, sessionID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetItemTx returns the (order, product) line item, or nil when the product
// is not in the order yet.
func (s *SQL) GetItemTx(ctx context.Context, tx *sqlx.Tx, orderID, productID uint64) (*model.OrderItemRow, error) {
	var row model.OrderItemRow
	if err := tx.QueryRowxContext(ctx, getItemQuery, orderID, productID).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *SQL) InsertItemTx(ctx context.Context, tx *sqlx.Tx, orderID, productID uint64, quantity int, pricePerItem int64) error {
	_, err := tx.ExecContext(ctx, insertItemQuery, orderID, productID, quantity, pricePerItem)
	return err
}

func (s *SQL) SetQuantityTx(ctx context.Context, tx *sqlx.Tx, orderItemID uint64, quantity int) error {
	_, err := tx.ExecContext(ctx, setQuantityQuery, quantity, orderItemID)
	return err
}

// GetPreparedOrderID returns 0 when the session has no prepared order.
func (s *SQL) GetPreparedOrderID(ctx context.Context, sessionID string) (uint64, error) {
	var id uint64
	if err := s.conn.GetContext(ctx, &id, getPreparedOrderQuery, sessionID); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return id, nil
}

func (s *SQL) ListItems(ctx context.Context, orderID uint64) ([]model.CartItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CartItem, 0)
	for rows.Next() {
		var it model.CartItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ItemBelongsToSession reports whether the item sits in a prepared order
// owned by the session. Completed orders fail the check: their items are
// read-only.
func (s *SQL) ItemBelongsToSession(ctx context.Context, orderItemID uint64, sessionID string) (bool, error) {
	var id uint64
	if err := s.conn.GetContext(ctx, &id, itemOwnershipQuery, orderItemID, sessionID); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SQL) SetQuantity(ctx context.Context, orderItemID uint64, quantity int) error {
	_, err := s.conn.ExecContext(ctx, setQuantityQuery, quantity, orderItemID)
	return err
}

func (s *SQL) DeleteItem(ctx context.Context, orderItemID uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteItemQuery, orderItemID)
	return err
}
