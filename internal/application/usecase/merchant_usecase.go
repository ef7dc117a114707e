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

// MerchantUseCase CRUD de tiendas. Cada tienda tiene un keeper (usuario responsable).
type MerchantUseCase struct {
	merchantRepo repository.MerchantRepository
	userRepo     repository.UserRepository
}

// NewMerchantUseCase construye el caso de uso.
func NewMerchantUseCase(merchantRepo repository.MerchantRepository, userRepo repository.UserRepository) *MerchantUseCase {
	return &MerchantUseCase{merchantRepo: merchantRepo, userRepo: userRepo}
}

// Create crea una tienda validando que el keeper exista.
func (uc *MerchantUseCase) Create(ctx context.Context, in dto.CreateMerchantRequest) (*dto.MerchantResponse, error) {
	if in.Name == "" || in.KeeperID == "" {
		return nil, domain.ErrInvalidInput
	}
	keeper, err := uc.userRepo.GetByID(in.KeeperID)
	if err != nil {
		return nil, err
	}
	if keeper == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	merchant := &entity.Merchant{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Slug:      slug.Make(in.Name),
		Address:   in.Address,
		Photo:     in.Photo,
		Phone:     in.Phone,
		KeeperID:  in.KeeperID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.merchantRepo.Create(merchant); err != nil {
		return nil, err
	}
	return toMerchantResponse(merchant), nil
}

// GetByID devuelve una tienda activa.
func (uc *MerchantUseCase) GetByID(ctx context.Context, id string) (*dto.MerchantResponse, error) {
	merchant, err := uc.merchantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrNotFound
	}
	return toMerchantResponse(merchant), nil
}

// Update aplica cambios parciales; nombre nuevo regenera el slug.
func (uc *MerchantUseCase) Update(ctx context.Context, id string, in dto.UpdateMerchantRequest) (*dto.MerchantResponse, error) {
	merchant, err := uc.merchantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		merchant.Name = *in.Name
		merchant.Slug = slug.Make(*in.Name)
	}
	if in.Address != nil {
		merchant.Address = *in.Address
	}
	if in.Photo != nil {
		merchant.Photo = *in.Photo
	}
	if in.Phone != nil {
		merchant.Phone = *in.Phone
	}
	if in.KeeperID != nil {
		keeper, err := uc.userRepo.GetByID(*in.KeeperID)
		if err != nil {
			return nil, err
		}
		if keeper == nil {
			return nil, domain.ErrNotFound
		}
		merchant.KeeperID = *in.KeeperID
	}
	merchant.UpdatedAt = time.Now()
	if err := uc.merchantRepo.Update(merchant); err != nil {
		return nil, err
	}
	return toMerchantResponse(merchant), nil
}

// List devuelve tiendas activas paginadas.
func (uc *MerchantUseCase) List(ctx context.Context, limit, offset int) (*dto.MerchantListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	merchants, err := uc.merchantRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.MerchantListResponse{
		Items: make([]dto.MerchantResponse, 0, len(merchants)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, merchant := range merchants {
		out.Items = append(out.Items, *toMerchantResponse(merchant))
	}
	return out, nil
}

// Delete marca la tienda como borrada (soft delete). Sus filas de stock quedan intactas.
func (uc *MerchantUseCase) Delete(ctx context.Context, id string) error {
	return uc.merchantRepo.Delete(id)
}

func toMerchantResponse(m *entity.Merchant) *dto.MerchantResponse {
	return &dto.MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		Address:   m.Address,
		Photo:     m.Photo,
		Phone:     m.Phone,
		KeeperID:  m.KeeperID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
