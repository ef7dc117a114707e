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

// ProductUseCase CRUD de productos del catálogo. El producto no lleva stock propio:
// el stock vive en las tablas pivote por tienda y por bodega.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create crea un producto validando que la categoría exista y el precio no sea negativo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.NewString(),
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Slug:       slug.Make(in.Name),
		Thumbnail:  in.Thumbnail,
		About:      in.About,
		Price:      in.Price,
		IsPopular:  in.IsPopular,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID devuelve un producto activo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetBySlug devuelve un producto activo por su slug.
func (uc *ProductUseCase) GetBySlug(ctx context.Context, s string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica cambios parciales; nombre nuevo regenera el slug.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
		product.Slug = slug.Make(*in.Name)
	}
	if in.Thumbnail != nil {
		product.Thumbnail = *in.Thumbnail
	}
	if in.About != nil {
		product.About = *in.About
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.IsPopular != nil {
		product.IsPopular = *in.IsPopular
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve productos activos paginados, opcionalmente filtrados por categoría.
func (uc *ProductUseCase) List(ctx context.Context, categoryID string, limit, offset int) (*dto.ProductListResponse, error) {
	limit, offset = normalizePage(limit, offset)

	var (
		products []*entity.Product
		err      error
	)
	if categoryID != "" {
		products, err = uc.productRepo.ListByCategory(categoryID, limit, offset)
	} else {
		products, err = uc.productRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}

	out := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(products)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, product := range products {
		out.Items = append(out.Items, *toProductResponse(product))
	}
	return out, nil
}

// Delete marca el producto como borrado (soft delete).
// Las filas de stock existentes no se tocan: el detach es una operación aparte.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Name:       p.Name,
		Slug:       p.Slug,
		Thumbnail:  p.Thumbnail,
		About:      p.About,
		Price:      p.Price,
		IsPopular:  p.IsPopular,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
