package dto

import "time"

// AttachMerchantProductRequest body para POST /api/merchants/:merchant/products.
type AttachMerchantProductRequest struct {
	ProductID   string `json:"product_id"`
	Stock       int    `json:"stock"`
	WarehouseID string `json:"warehouse_id"`
}

// UpdateMerchantStockRequest body para PUT /api/merchants/:merchant/products/:product.
// El stock se reemplaza por completo (no es un incremento).
type UpdateMerchantStockRequest struct {
	Stock       int    `json:"stock"`
	WarehouseID string `json:"warehouse_id"`
}

// MerchantStockResponse fila pivote producto×tienda en respuestas.
type MerchantStockResponse struct {
	MerchantID  string    `json:"merchant_id"`
	ProductID   string    `json:"product_id"`
	Stock       int       `json:"stock"`
	WarehouseID string    `json:"warehouse_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AttachWarehouseProductRequest body para POST /api/warehouses/:warehouse/products.
type AttachWarehouseProductRequest struct {
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
}

// UpdateWarehouseStockRequest body para PUT /api/warehouses/:warehouse/products/:product.
type UpdateWarehouseStockRequest struct {
	Stock int `json:"stock"`
}

// WarehouseStockResponse fila pivote producto×bodega en respuestas.
type WarehouseStockResponse struct {
	WarehouseID string    `json:"warehouse_id"`
	ProductID   string    `json:"product_id"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
