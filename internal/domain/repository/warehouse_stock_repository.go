package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// WarehouseStockRepository define el puerto sobre la tabla pivote warehouse_products.
type WarehouseStockRepository interface {
	// Get devuelve nil, nil si el par (warehouse, product) no tiene fila.
	Get(warehouseID, productID string) (*entity.WarehouseStock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(warehouseID, productID string) (*entity.WarehouseStock, error)
	Create(stock *entity.WarehouseStock) error
	// UpdateStock sobreescribe el stock (no es delta). Devuelve domain.ErrNotFound si no existe la fila.
	UpdateStock(warehouseID, productID string, stock int) error
	// Delete es idempotente: borrar una fila inexistente no es error.
	Delete(warehouseID, productID string) error
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.WarehouseStock, error)
	ListByProduct(productID string) ([]*entity.WarehouseStock, error)
	// TotalByProduct suma el stock de todas las bodegas del producto en una sola consulta.
	TotalByProduct(productID string) (int64, error)
}
