package stock

import (
	"context"
	"time"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// MerchantStockUseCase mutaciones del libro de stock producto×tienda.
// Cada operación corre dentro de una transacción (TxRunner) con bloqueo de fila,
// y la PK compuesta de la tabla pivote cierra las carreras de asignación concurrente.
type MerchantStockUseCase struct {
	txRunner      TxRunner
	stockRepo     repository.MerchantStockRepository // lecturas fuera de transacción
	merchantRepo  repository.MerchantRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	cache         Cache // opcional, nil = sin caché
}

// NewMerchantStockUseCase construye el caso de uso.
func NewMerchantStockUseCase(
	txRunner TxRunner,
	stockRepo repository.MerchantStockRepository,
	merchantRepo repository.MerchantRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	cache Cache,
) *MerchantStockUseCase {
	return &MerchantStockUseCase{
		txRunner:      txRunner,
		stockRepo:     stockRepo,
		merchantRepo:  merchantRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		cache:         cache,
	}
}

// Attach asigna un producto a una tienda con stock inicial y bodega surtidora.
// Re-asignar un par ya asignado se rechaza con ErrDuplicate (no es upsert);
// una carrera contra la PK compuesta se reporta igual, nunca como error crudo.
func (uc *MerchantStockUseCase) Attach(ctx context.Context, merchantID string, in dto.AttachMerchantProductRequest) (*dto.MerchantStockResponse, error) {
	if in.Stock < 0 || in.ProductID == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(merchantID, in.ProductID, in.WarehouseID); err != nil {
		return nil, err
	}

	now := time.Now()
	row := &entity.MerchantStock{
		MerchantID:  merchantID,
		ProductID:   in.ProductID,
		Stock:       in.Stock,
		WarehouseID: in.WarehouseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.Run(ctx, func(msRepo repository.MerchantStockRepository, _ repository.WarehouseStockRepository) error {
		existing, err := msRepo.Get(merchantID, in.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return msRepo.Create(row)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, in.ProductID)
	return toMerchantStockResponse(row), nil
}

// UpdateStock reemplaza stock y bodega surtidora de un par (tienda, producto) existente.
// Es una sobreescritura total en un solo UPDATE, no un delta.
func (uc *MerchantStockUseCase) UpdateStock(ctx context.Context, merchantID, productID string, in dto.UpdateMerchantStockRequest) (*dto.MerchantStockResponse, error) {
	if in.Stock < 0 || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	var updated *entity.MerchantStock
	err = uc.txRunner.Run(ctx, func(msRepo repository.MerchantStockRepository, _ repository.WarehouseStockRepository) error {
		row, err := msRepo.GetForUpdate(merchantID, productID)
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}
		if err := msRepo.UpdateStock(merchantID, productID, in.Stock, in.WarehouseID); err != nil {
			return err
		}
		row.Stock = in.Stock
		row.WarehouseID = in.WarehouseID
		row.UpdatedAt = time.Now()
		updated = row
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidate(ctx, productID)
	return toMerchantStockResponse(updated), nil
}

// Detach retira el producto de la tienda. Idempotente: si la fila no existe no hay error.
func (uc *MerchantStockUseCase) Detach(ctx context.Context, merchantID, productID string) error {
	err := uc.txRunner.Run(ctx, func(msRepo repository.MerchantStockRepository, _ repository.WarehouseStockRepository) error {
		return msRepo.Delete(merchantID, productID)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx, productID)
	return nil
}

// ListByMerchant devuelve las asignaciones de productos de una tienda.
func (uc *MerchantStockUseCase) ListByMerchant(ctx context.Context, merchantID string, limit, offset int) ([]dto.MerchantStockResponse, error) {
	merchant, err := uc.merchantRepo.GetByID(merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrNotFound
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := uc.stockRepo.ListByMerchant(merchantID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MerchantStockResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toMerchantStockResponse(row))
	}
	return out, nil
}

// checkRefs valida que tienda, producto y bodega existan antes de escribir el libro.
// El body ya viene validado en el borde HTTP; esto cubre la carrera contra un borrado.
func (uc *MerchantStockUseCase) checkRefs(merchantID, productID, warehouseID string) error {
	merchant, err := uc.merchantRepo.GetByID(merchantID)
	if err != nil {
		return err
	}
	if merchant == nil {
		return domain.ErrNotFound
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return nil
}

// invalidate descarta los agregados cacheados del producto; un fallo del caché no es fatal.
func (uc *MerchantStockUseCase) invalidate(ctx context.Context, productID string) {
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx, productID)
	}
}

func toMerchantStockResponse(s *entity.MerchantStock) *dto.MerchantStockResponse {
	if s == nil {
		return nil
	}
	return &dto.MerchantStockResponse{
		MerchantID:  s.MerchantID,
		ProductID:   s.ProductID,
		Stock:       s.Stock,
		WarehouseID: s.WarehouseID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
