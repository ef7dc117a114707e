package stock

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los repos
// del libro de stock atados a esa tx. Garantiza atomicidad de cada mutación.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		merchantStockRepo repository.MerchantStockRepository,
		warehouseStockRepo repository.WarehouseStockRepository,
	) error) error
}

// Totals agrupa los dos agregados de stock de un producto.
// Son totales independientes: el lado tiendas y el lado bodegas no se reconcilian.
type Totals struct {
	MerchantStock  int64 `json:"merchant_stock"`
	WarehouseStock int64 `json:"warehouse_stock"`
}

// Cache puerto cache-aside para los agregados de stock (opcional: nil desactiva el caché).
// Un fallo del caché nunca debe impedir la lectura desde la BD.
type Cache interface {
	// GetTotals devuelve los totales cacheados y un bool de acierto.
	GetTotals(ctx context.Context, productID string) (*Totals, bool, error)
	SetTotals(ctx context.Context, productID string, totals Totals) error
	// Invalidate descarta los totales del producto tras una mutación del libro.
	Invalidate(ctx context.Context, productID string) error
}
