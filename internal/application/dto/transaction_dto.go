package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItemRequest línea de venta en el body de creación.
type TransactionItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateTransactionRequest body para POST /api/transactions.
type CreateTransactionRequest struct {
	MerchantID string                   `json:"merchant_id"`
	Name       string                   `json:"name"`
	Phone      string                   `json:"phone,omitempty"`
	Items      []TransactionItemRequest `json:"items"`
}

// TransactionItemResponse línea de venta en respuestas.
type TransactionItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	SubTotal  decimal.Decimal `json:"sub_total"`
}

// TransactionResponse venta en respuestas.
type TransactionResponse struct {
	ID         string                    `json:"id"`
	MerchantID string                    `json:"merchant_id"`
	Name       string                    `json:"name"`
	Phone      string                    `json:"phone,omitempty"`
	SubTotal   decimal.Decimal           `json:"sub_total"`
	TaxTotal   decimal.Decimal           `json:"tax_total"`
	GrandTotal decimal.Decimal           `json:"grand_total"`
	Items      []TransactionItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// TransactionListResponse listado paginado de ventas.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
