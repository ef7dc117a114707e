package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Thumbnail  string          `json:"thumbnail,omitempty"`
	About      string          `json:"about,omitempty"`
	Price      decimal.Decimal `json:"price"`
	IsPopular  bool            `json:"is_popular,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
type UpdateProductRequest struct {
	CategoryID *string          `json:"category_id,omitempty"`
	Name       *string          `json:"name,omitempty"`
	Thumbnail  *string          `json:"thumbnail,omitempty"`
	About      *string          `json:"about,omitempty"`
	Price      *decimal.Decimal `json:"price,omitempty"`
	IsPopular  *bool            `json:"is_popular,omitempty"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	Thumbnail  string          `json:"thumbnail,omitempty"`
	About      string          `json:"about,omitempty"`
	Price      decimal.Decimal `json:"price"`
	IsPopular  bool            `json:"is_popular"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ProductStockResponse totales agregados de stock de un producto.
// Son dos totales independientes (lado tiendas y lado bodegas), no se reconcilian entre sí.
type ProductStockResponse struct {
	ProductID      string `json:"product_id"`
	MerchantStock  int64  `json:"merchant_stock"`
	WarehouseStock int64  `json:"warehouse_stock"`
}
