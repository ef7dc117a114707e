package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// MerchantStockRepository define el puerto sobre la tabla pivote merchant_products.
// Las mutaciones se usan dentro de transacciones para garantizar consistencia.
type MerchantStockRepository interface {
	// Get devuelve nil, nil si el par (merchant, product) no tiene fila.
	Get(merchantID, productID string) (*entity.MerchantStock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(merchantID, productID string) (*entity.MerchantStock, error)
	Create(stock *entity.MerchantStock) error
	// UpdateStock sobreescribe stock y warehouse_id en un solo UPDATE (no es delta).
	// Devuelve domain.ErrNotFound si la fila no existe.
	UpdateStock(merchantID, productID string, stock int, warehouseID string) error
	// Delete es idempotente: borrar una fila inexistente no es error.
	Delete(merchantID, productID string) error
	ListByMerchant(merchantID string, limit, offset int) ([]*entity.MerchantStock, error)
	ListByProduct(productID string) ([]*entity.MerchantStock, error)
	// TotalByProduct suma el stock de todas las tiendas del producto en una sola consulta.
	TotalByProduct(productID string) (int64, error)
}
