package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// El stock NO vive aquí: se lleva por ubicación en MerchantStock y WarehouseStock.
type Product struct {
	ID         string
	CategoryID string
	Name       string
	Slug       string
	Thumbnail  string
	About      string
	Price      decimal.Decimal // precio de venta
	IsPopular  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}
