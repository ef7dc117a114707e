package checkout

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta el registro de una venta dentro de una transacción de BD:
// descuento de stock y escritura de la venta comparten el mismo commit.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		merchantStockRepo repository.MerchantStockRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}

// Cache invalida los agregados de stock de los productos vendidos.
type Cache interface {
	Invalidate(ctx context.Context, productID string) error
}
