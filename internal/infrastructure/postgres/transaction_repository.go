package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste cabecera e items de la venta. Debe invocarse dentro de una transacción de BD
// (TxRunner.RunCheckout) junto con el descuento de stock.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, merchant_id, name, phone, sub_total, tax_total, grand_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.MerchantID, tx.Name, tx.Phone,
		tx.SubTotal, tx.TaxTotal, tx.GrandTotal, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	itemQuery := `
		INSERT INTO transaction_products (id, transaction_id, product_id, quantity, price, sub_total)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i := range tx.Items {
		item := &tx.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		item.TransactionID = tx.ID
		if _, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.TransactionID, item.ProductID, item.Quantity, item.Price, item.SubTotal,
		); err != nil {
			return fmt.Errorf("insert transaction item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus items; nil, nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, merchant_id, name, phone, sub_total, tax_total, grand_total, created_at, updated_at, deleted_at
		FROM transactions WHERE id = $1 AND deleted_at IS NULL`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.MerchantID, &t.Name, &t.Phone,
		&t.SubTotal, &t.TaxTotal, &t.GrandTotal, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	items, err := r.itemsByTransaction(t.ID)
	if err != nil {
		return nil, err
	}
	t.Items = items
	return &t, nil
}

// ListByMerchant lista ventas de una tienda (sin items, solo cabeceras) con paginación.
func (r *TransactionRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, merchant_id, name, phone, sub_total, tax_total, grand_total, created_at, updated_at, deleted_at
		FROM transactions WHERE merchant_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, merchantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions by merchant: %w", err)
	}
	return r.scanAll(rows)
}

// List lista todas las ventas (sin items) con paginación.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, merchant_id, name, phone, sub_total, tax_total, grand_total, created_at, updated_at, deleted_at
		FROM transactions WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return r.scanAll(rows)
}

func (r *TransactionRepo) itemsByTransaction(transactionID string) ([]entity.TransactionItem, error) {
	query := `
		SELECT id, transaction_id, product_id, quantity, price, sub_total
		FROM transaction_products WHERE transaction_id = $1`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list transaction items: %w", err)
	}
	defer rows.Close()
	var items []entity.TransactionItem
	for rows.Next() {
		var it entity.TransactionItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.ProductID, &it.Quantity, &it.Price, &it.SubTotal); err != nil {
			return nil, fmt.Errorf("scan transaction item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *TransactionRepo) scanAll(rows pgx.Rows) ([]*entity.Transaction, error) {
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.MerchantID, &t.Name, &t.Phone,
			&t.SubTotal, &t.TaxTotal, &t.GrandTotal, &t.CreatedAt, &t.UpdatedAt, &t.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
