package model

import (
	"time"

	"github.com/easyfind/storefront/constant"
)

// CatalogItem is one row of the catalog listing: the product joined with its
// book attributes when the product is a book (NULL otherwise).
type CatalogItem struct {
	ProductID     uint64               `db:"product_id" json:"product_id"`
	ProductName   string               `db:"product_name" json:"product_name"`
	Price         int64                `db:"price" json:"price"`
	ImageURL      string               `db:"image_url" json:"image_url"`
	ProductType   constant.ProductType `db:"product_type" json:"product_type"`
	IsActive      bool                 `db:"is_active" json:"is_active"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
	Author        *string              `db:"author" json:"author,omitempty"`
	Publisher     *string              `db:"publisher" json:"publisher,omitempty"`
	Category      *string              `db:"category" json:"category,omitempty"`
	ISBN          *string              `db:"isbn" json:"isbn,omitempty"`
	PublishedYear *int                 `db:"published_year" json:"published_year,omitempty"`
}

type CatalogFilter struct {
	Page        int
	ProductType constant.ProductType
	Category    string
	Sort        constant.SortKey
}

type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
}

type CatalogResponse struct {
	Success    bool          `json:"success"`
	Data       []CatalogItem `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

type Category struct {
	ID   string `db:"category" json:"id"`
	Name string `json:"name"`
}

// SearchResult is one row of the name search, a trimmed-down catalog item.
type SearchResult struct {
	ProductID   uint64               `db:"product_id" json:"product_id"`
	ProductName string               `db:"product_name" json:"product_name"`
	Price       int64                `db:"price" json:"price"`
	ImageURL    string               `db:"image_url" json:"image_url"`
	ProductType constant.ProductType `db:"product_type" json:"product_type"`
	Author      *string              `db:"author" json:"author,omitempty"`
	Publisher   *string              `db:"publisher" json:"publisher,omitempty"`
	Category    *string              `db:"category" json:"category,omitempty"`
}

type SearchResponse struct {
	Data []SearchResult `json:"data"`
}
