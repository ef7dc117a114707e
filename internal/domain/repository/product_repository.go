package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error // soft delete
}
