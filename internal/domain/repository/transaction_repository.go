package repository

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para ventas.
type TransactionRepository interface {
	// Create persiste cabecera e items. Debe invocarse dentro de una transacción de BD.
	Create(tx *entity.Transaction) error
	// GetByID devuelve la venta con sus items; nil, nil si no existe.
	GetByID(id string) (*entity.Transaction, error)
	ListByMerchant(merchantID string, limit, offset int) ([]*entity.Transaction, error)
	List(limit, offset int) ([]*entity.Transaction, error)
}
