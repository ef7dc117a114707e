package entity

import "time"

// WarehouseStock es la fila pivote producto×bodega del libro de stock.
// A lo sumo una fila por (warehouse_id, product_id); Stock siempre >= 0.
type WarehouseStock struct {
	WarehouseID string
	ProductID   string
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
