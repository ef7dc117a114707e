package entity

import "time"

// MerchantStock es la fila pivote producto×tienda del libro de stock.
// A lo sumo una fila por (merchant_id, product_id); Stock siempre >= 0.
// WarehouseID indica qué bodega surte el stock de este producto en esta tienda.
type MerchantStock struct {
	MerchantID  string
	ProductID   string
	Stock       int
	WarehouseID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
