package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction representa una venta registrada en una tienda.
type Transaction struct {
	ID         string
	MerchantID string
	Name       string // nombre del comprador
	Phone      string
	SubTotal   decimal.Decimal
	TaxTotal   decimal.Decimal
	GrandTotal decimal.Decimal
	Items      []TransactionItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// TransactionItem es una línea de venta (precio capturado al momento de la venta).
type TransactionItem struct {
	ID            string
	TransactionID string
	ProductID     string
	Quantity      int
	Price         decimal.Decimal
	SubTotal      decimal.Decimal
}
