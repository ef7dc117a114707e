package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

var _ repository.MerchantStockRepository = (*MerchantStockRepo)(nil)

// MerchantStockRepo implementación sobre la tabla pivote merchant_products (usable con pool o tx).
// La PK compuesta (merchant_id, product_id) garantiza a lo sumo una fila por par.
type MerchantStockRepo struct {
	q Querier
}

// NewMerchantStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMerchantStockRepository(q Querier) *MerchantStockRepo {
	return &MerchantStockRepo{q: q}
}

// Get obtiene la fila pivote de un producto en una tienda; nil, nil si no existe.
func (r *MerchantStockRepo) Get(merchantID, productID string) (*entity.MerchantStock, error) {
	query := `
		SELECT merchant_id, product_id, stock, warehouse_id, created_at, updated_at
		FROM merchant_products WHERE merchant_id = $1 AND product_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, merchantID, productID), "get merchant stock")
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE); nil, nil si no existe.
func (r *MerchantStockRepo) GetForUpdate(merchantID, productID string) (*entity.MerchantStock, error) {
	query := `
		SELECT merchant_id, product_id, stock, warehouse_id, created_at, updated_at
		FROM merchant_products WHERE merchant_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, merchantID, productID), "get merchant stock for update")
}

// Create inserta la fila pivote. Una carrera de asignación concurrente choca con la PK
// compuesta y se devuelve como domain.ErrDuplicate, nunca como error crudo de Postgres.
func (r *MerchantStockRepo) Create(stock *entity.MerchantStock) error {
	query := `
		INSERT INTO merchant_products (merchant_id, product_id, stock, warehouse_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		stock.MerchantID, stock.ProductID, stock.Stock, stock.WarehouseID,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert merchant stock: %w", err)
	}
	return nil
}

// UpdateStock sobreescribe stock y warehouse_id en un solo UPDATE (reemplazo total, no delta).
func (r *MerchantStockRepo) UpdateStock(merchantID, productID string, stock int, warehouseID string) error {
	query := `
		UPDATE merchant_products SET stock = $3, warehouse_id = $4, updated_at = now()
		WHERE merchant_id = $1 AND product_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, merchantID, productID, stock, warehouseID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // warehouse_id inexistente
		}
		return fmt.Errorf("update merchant stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila pivote. Idempotente: 0 filas afectadas no es error.
func (r *MerchantStockRepo) Delete(merchantID, productID string) error {
	query := `DELETE FROM merchant_products WHERE merchant_id = $1 AND product_id = $2`
	if _, err := r.q.Exec(context.Background(), query, merchantID, productID); err != nil {
		return fmt.Errorf("delete merchant stock: %w", err)
	}
	return nil
}

// ListByMerchant lista el stock de una tienda con paginación.
func (r *MerchantStockRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.MerchantStock, error) {
	query := `
		SELECT merchant_id, product_id, stock, warehouse_id, created_at, updated_at
		FROM merchant_products WHERE merchant_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, merchantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list merchant stock: %w", err)
	}
	return r.scanAll(rows)
}

// ListByProduct lista las tiendas que tienen asignado el producto.
func (r *MerchantStockRepo) ListByProduct(productID string) ([]*entity.MerchantStock, error) {
	query := `
		SELECT merchant_id, product_id, stock, warehouse_id, created_at, updated_at
		FROM merchant_products WHERE product_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list merchant stock by product: %w", err)
	}
	return r.scanAll(rows)
}

// TotalByProduct suma el stock del producto en todas las tiendas en una sola consulta
// (snapshot consistente, sin agregación multi-paso). 0 si no hay asignaciones.
func (r *MerchantStockRepo) TotalByProduct(productID string) (int64, error) {
	query := `SELECT COALESCE(SUM(stock), 0) FROM merchant_products WHERE product_id = $1`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total merchant stock: %w", err)
	}
	return total, nil
}

func (r *MerchantStockRepo) scanOne(row pgx.Row, op string) (*entity.MerchantStock, error) {
	var s entity.MerchantStock
	err := row.Scan(&s.MerchantID, &s.ProductID, &s.Stock, &s.WarehouseID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *MerchantStockRepo) scanAll(rows pgx.Rows) ([]*entity.MerchantStock, error) {
	defer rows.Close()
	var list []*entity.MerchantStock
	for rows.Next() {
		var s entity.MerchantStock
		if err := rows.Scan(&s.MerchantID, &s.ProductID, &s.Stock, &s.WarehouseID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan merchant stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
