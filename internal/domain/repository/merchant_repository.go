package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// MerchantRepository define el puerto de persistencia para Merchant (DIP).
type MerchantRepository interface {
	Create(merchant *entity.Merchant) error
	GetByID(id string) (*entity.Merchant, error)
	Update(merchant *entity.Merchant) error
	List(limit, offset int) ([]*entity.Merchant, error)
	Delete(id string) error // soft delete
}
