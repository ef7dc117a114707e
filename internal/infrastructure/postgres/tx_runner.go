package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/storefront-api/internal/application/checkout"
	"github.com/jhoicas/storefront-api/internal/application/stock"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and checkout.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ checkout.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos del libro de stock atados a la tx
// y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	merchantStockRepo repository.MerchantStockRepository,
	warehouseStockRepo repository.WarehouseStockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMerchantStockRepository(tx), NewWarehouseStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCheckout inicia una transacción con los repos que necesita el registro de una venta.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	merchantStockRepo repository.MerchantStockRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMerchantStockRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
