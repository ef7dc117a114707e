package stock

import (
	"context"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// AggregateUseCase lecturas agregadas del libro de stock.
// Cada total sale de una sola consulta SUM (snapshot consistente, sin pasos intermedios)
// y se cachea cache-aside; las mutaciones invalidan la entrada del producto.
type AggregateUseCase struct {
	merchantStockRepo  repository.MerchantStockRepository
	warehouseStockRepo repository.WarehouseStockRepository
	productRepo        repository.ProductRepository
	cache              Cache // opcional, nil = sin caché
}

// NewAggregateUseCase construye el caso de uso.
func NewAggregateUseCase(
	merchantStockRepo repository.MerchantStockRepository,
	warehouseStockRepo repository.WarehouseStockRepository,
	productRepo repository.ProductRepository,
	cache Cache,
) *AggregateUseCase {
	return &AggregateUseCase{
		merchantStockRepo:  merchantStockRepo,
		warehouseStockRepo: warehouseStockRepo,
		productRepo:        productRepo,
		cache:              cache,
	}
}

// TotalMerchantStock suma el stock del producto en todas sus tiendas. 0 si no tiene asignaciones.
func (uc *AggregateUseCase) TotalMerchantStock(ctx context.Context, productID string) (int64, error) {
	totals, err := uc.totals(ctx, productID)
	if err != nil {
		return 0, err
	}
	return totals.MerchantStock, nil
}

// TotalWarehouseStock suma el stock del producto en todas sus bodegas. 0 si no tiene asignaciones.
func (uc *AggregateUseCase) TotalWarehouseStock(ctx context.Context, productID string) (int64, error) {
	totals, err := uc.totals(ctx, productID)
	if err != nil {
		return 0, err
	}
	return totals.WarehouseStock, nil
}

// ProductStock devuelve ambos totales para un producto existente (ErrNotFound si no existe).
func (uc *AggregateUseCase) ProductStock(ctx context.Context, productID string) (*dto.ProductStockResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	totals, err := uc.totals(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductStockResponse{
		ProductID:      productID,
		MerchantStock:  totals.MerchantStock,
		WarehouseStock: totals.WarehouseStock,
	}, nil
}

// totals resuelve los agregados con cache-aside: un fallo del caché degrada a leer la BD.
func (uc *AggregateUseCase) totals(ctx context.Context, productID string) (Totals, error) {
	if uc.cache != nil {
		if cached, ok, err := uc.cache.GetTotals(ctx, productID); err == nil && ok {
			return *cached, nil
		}
	}

	merchantTotal, err := uc.merchantStockRepo.TotalByProduct(productID)
	if err != nil {
		return Totals{}, err
	}
	warehouseTotal, err := uc.warehouseStockRepo.TotalByProduct(productID)
	if err != nil {
		return Totals{}, err
	}

	totals := Totals{MerchantStock: merchantTotal, WarehouseStock: warehouseTotal}
	if uc.cache != nil {
		_ = uc.cache.SetTotals(ctx, productID, totals)
	}
	return totals, nil
}
