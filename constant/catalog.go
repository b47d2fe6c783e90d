package constant

type ProductType string

const (
	ProductTypeBook       ProductType = "book"
	ProductTypeStationery ProductType = "stationery"

	// ProductTypeAll disables the product-type filter on catalog queries.
	ProductTypeAll ProductType = "all"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

const (
	// CategoryAll disables the category filter.
	CategoryAll = "all"

	// CatalogPageSize is the fixed page size of the catalog listing.
	CatalogPageSize = 9
)
