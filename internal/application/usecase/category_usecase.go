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

// CategoryUseCase CRUD de categorías del catálogo.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create crea una categoría; el slug se deriva del nombre y debe ser único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Slug:      slug.Make(in.Name),
		Photo:     in.Photo,
		Tagline:   in.Tagline,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// GetByID devuelve una categoría activa.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// GetBySlug devuelve una categoría activa por su slug.
func (uc *CategoryUseCase) GetBySlug(ctx context.Context, s string) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// Update aplica cambios parciales; si cambia el nombre el slug se regenera.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
		category.Slug = slug.Make(*in.Name)
	}
	if in.Photo != nil {
		category.Photo = *in.Photo
	}
	if in.Tagline != nil {
		category.Tagline = *in.Tagline
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// List devuelve categorías activas paginadas.
func (uc *CategoryUseCase) List(ctx context.Context, limit, offset int) (*dto.CategoryListResponse, error) {
	limit, offset = normalizePage(limit, offset)
	categories, err := uc.categoryRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{
		Items: make([]dto.CategoryResponse, 0, len(categories)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, category := range categories {
		out.Items = append(out.Items, *toCategoryResponse(category))
	}
	return out, nil
}

// Delete marca la categoría como borrada (soft delete). No cascada a productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return uc.categoryRepo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Photo:     c.Photo,
		Tagline:   c.Tagline,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
