package catalog

import (
	"context"

	"github.com/easyfind/storefront/constant"
	"github.com/easyfind/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CatalogRepository interface {
	List(ctx context.Context, filter *model.CatalogFilter, perPage int) ([]model.CatalogItem, int64, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	Search(ctx context.Context, query string, productType constant.ProductType) ([]model.SearchResult, error)
	GetPrice(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error)
}

func NewCatalogRepository(conn *sqlx.DB) CatalogRepository {
	return &SQL{conn: conn}
}

const (
	listCatalogBase = `SELECT p.product_id, p.product_name, p.price, p.image_url, p.product_type, p.is_active, p.created_at,
b.author, b.publisher, b.category, b.isbn, b.published_year
FROM product p
LEFT JOIN book b ON p.product_id = b.product_id
WHERE p.is_active = TRUE`

	countCatalogBase = `SELECT COUNT(*)
FROM product p
LEFT JOIN book b ON p.product_id = b.product_id
WHERE p.is_active = TRUE`

	listCategoriesQuery = `SELECT DISTINCT category FROM book`

	searchBase = `SELECT p.product_id, p.product_name, p.price, p.image_url, p.product_type,
b.author, b.publisher, b.category
FROM product p
LEFT JOIN book b ON p.product_id = b.product_id
WHERE p.product_name LIKE ?`

	getPriceQuery = `SELECT price FROM product WHERE product_id = ?`
)

// catalogWhere appends the type/category filters shared by the list and
// count queries. The category filter only applies to books.
func catalogWhere(filter *model.CatalogFilter) (string, []any) {
	clause := ""
	args := make([]any, 0, 2)

	if filter.ProductType != constant.ProductTypeAll {
		clause += " AND p.product_type = ?"
		args = append(args, filter.ProductType)
	}
	if filter.ProductType == constant.ProductTypeBook && filter.Category != constant.CategoryAll && filter.Category != "" {
		clause += " AND b.category = ?"
		args = append(args, filter.Category)
	}

	return clause, args
}

func orderClause(sort constant.SortKey) string {
	switch sort {
	case constant.SortPriceAsc:
		return " ORDER BY p.price ASC, p.product_id ASC"
	case constant.SortPriceDesc:
		return " ORDER BY p.price DESC, p.product_id ASC"
	default:
		return " ORDER BY p.created_at DESC, p.product_id DESC"
	}
}

func (s *SQL) List(ctx context.Context, filter *model.CatalogFilter, perPage int) ([]model.CatalogItem, int64, error) {
	where, args := catalogWhere(filter)
	offset := (filter.Page - 1) * perPage

	query := listCatalogBase + where + orderClause(filter.Sort) + " LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, perPage, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.CatalogItem, 0)
	for rows.Next() {
		var it model.CatalogItem
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countCatalogBase+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) ListCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.conn.QueryxContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		c.Name = c.ID
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQL) Search(ctx context.Context, query string, productType constant.ProductType) ([]model.SearchResult, error) {
	q := searchBase
	args := []any{"%" + query + "%"}

	if productType != constant.ProductTypeAll {
		q += " AND p.product_type = ?"
		args = append(args, productType)
	}

	rows, err := s.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]model.SearchResult, 0)
	for rows.Next() {
		var r model.SearchResult
		if err := rows.StructScan(&r); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetPrice reads the product's current price inside the caller's transaction,
// used by the cart manager to snapshot the price at add time.
func (s *SQL) GetPrice(ctx context.Context, tx *sqlx.Tx, productID uint64) (int64, error) {
	var price int64
	if err := tx.GetContext(ctx, &price, getPriceQuery, productID); err != nil {
		return 0, err
	}
	return price, nil
}
