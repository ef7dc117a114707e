package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/pkg/slug"
)

// WarehouseUseCase CRUD de bodegas.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo}
}

// Create crea una bodega.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Slug:      slug.Make(in.Name),
		Address:   in.Address,
		Photo:     in.Photo,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID devuelve una bodega activa.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	return toWarehouseResponse(warehouse), nil
}

// Update aplica cambios parciales; nombre nuevo regenera el slug.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Name = *in.Name
		warehouse.Slug = slug.Make(*in.Name)
	}
	if in.Address != nil {
		warehouse.Address = *in.Address
	}
	if in.Photo != nil {
		warehouse.Photo = *in.Photo
	}
	if in.Phone != nil {
		warehouse.Phone = *in.Phone
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List devuelve bodegas activas paginadas.
func (uc *WarehouseUseCase) List(ctx context.Context, limit, offset int) (*dto.WarehouseListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	warehouses, err := uc.warehouseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.WarehouseListResponse{
		Items: make([]dto.WarehouseResponse, 0, len(warehouses)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, warehouse := range warehouses {
		out.Items = append(out.Items, *toWarehouseResponse(warehouse))
	}
	return out, nil
}

// Delete marca la bodega como borrada (soft delete).
// Las filas de stock que la referencian como surtidora no se tocan.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	return uc.warehouseRepo.Delete(id)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Slug:      w.Slug,
		Address:   w.Address,
		Photo:     w.Photo,
		Phone:     w.Phone,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
