package stock

import (
	"context"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// WarehouseStockUseCase mutaciones del libro de stock producto×bodega.
type WarehouseStockUseCase struct {
	txRunner      TxRunner
	stockRepo     repository.WarehouseStockRepository // lecturas fuera de transacción
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	cache         Cache // opcional, nil = sin caché
}

// NewWarehouseStockUseCase construye el caso de uso.
func NewWarehouseStockUseCase(
	txRunner TxRunner,
	stockRepo repository.WarehouseStockRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	cache Cache,
) *WarehouseStockUseCase {
	return &WarehouseStockUseCase{
		txRunner:      txRunner,
		stockRepo:     stockRepo,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
		cache:         cache,
	}
}

// Attach asigna un producto a una bodega con stock inicial.
// Par ya asignado -> ErrDuplicate (mismo criterio que el lado tiendas).
func (uc *WarehouseStockUseCase) Attach(ctx context.Context, warehouseID string, in dto.AttachWarehouseProductRequest) (*dto.WarehouseStockResponse, error) {
	if in.Stock < 0 || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	row := &entity.WarehouseStock{
		WarehouseID: warehouseID,
		ProductID:   in.ProductID,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.Run(ctx, func(_ repository.MerchantStockRepository, wsRepo repository.WarehouseStockRepository) error {
		existing, err := wsRepo.Get(warehouseID, in.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return wsRepo.Create(row)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, in.ProductID)
	return toWarehouseStockResponse(row), nil
}

// UpdateStock reemplaza el stock de un par (bodega, producto) existente.
// Si el producto no está asignado a la bodega devuelve ErrNotFound; el borde HTTP
// lo traduce a un error de validación nombrando el producto faltante.
func (uc *WarehouseStockUseCase) UpdateStock(ctx context.Context, warehouseID, productID string, in dto.UpdateWarehouseStockRequest) (*dto.WarehouseStockResponse, error) {
	if in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.WarehouseStock
	err := uc.txRunner.Run(ctx, func(_ repository.MerchantStockRepository, wsRepo repository.WarehouseStockRepository) error {
		row, err := wsRepo.GetForUpdate(warehouseID, productID)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}
		if err := wsRepo.UpdateStock(warehouseID, productID, in.Stock); err != nil {
			return err
		}
		row.Stock = in.Stock
		row.UpdatedAt = time.Now()
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, productID)
	return toWarehouseStockResponse(updated), nil
}

// Detach retira el producto de la bodega. Idempotente: si la fila no existe no hay error.
func (uc *WarehouseStockUseCase) Detach(ctx context.Context, warehouseID, productID string) error {
	err := uc.txRunner.Run(ctx, func(_ repository.MerchantStockRepository, wsRepo repository.WarehouseStockRepository) error {
		return wsRepo.Delete(warehouseID, productID)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, productID)
	return nil
}

// ListByWarehouse devuelve las asignaciones de productos de una bodega.
func (uc *WarehouseStockUseCase) ListByWarehouse(ctx context.Context, warehouseID string, limit, offset int) ([]dto.WarehouseStockResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := uc.stockRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseStockResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toWarehouseStockResponse(row))
	}
	return out, nil
}

func (uc *WarehouseStockUseCase) invalidate(ctx context.Context, productID string) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, productID)
	}
}

func toWarehouseStockResponse(s *entity.WarehouseStock) *dto.WarehouseStockResponse {
	if s == nil {
		return nil
	}
	return &dto.WarehouseStockResponse{
		WarehouseID: s.WarehouseID,
		ProductID:   s.ProductID,
		Stock:       s.Stock,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
