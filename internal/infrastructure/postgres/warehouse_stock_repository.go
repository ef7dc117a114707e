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

var _ repository.WarehouseStockRepository = (*WarehouseStockRepo)(nil)

// WarehouseStockRepo implementación sobre la tabla pivote warehouse_products (usable con pool o tx).
type WarehouseStockRepo struct {
	q Querier
}

// NewWarehouseStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseStockRepository(q Querier) *WarehouseStockRepo {
	return &WarehouseStockRepo{q: q}
}

// Get obtiene la fila pivote de un producto en una bodega; nil, nil si no existe.
func (r *WarehouseStockRepo) Get(warehouseID, productID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT warehouse_id, product_id, stock, created_at, updated_at
		FROM warehouse_products WHERE warehouse_id = $1 AND product_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, warehouseID, productID), "get warehouse stock")
}

// GetForUpdate obtiene la fila y la bloquea para update (SELECT FOR UPDATE); nil, nil si no existe.
func (r *WarehouseStockRepo) GetForUpdate(warehouseID, productID string) (*entity.WarehouseStock, error) {
	query := `
		SELECT warehouse_id, product_id, stock, created_at, updated_at
		FROM warehouse_products WHERE warehouse_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, warehouseID, productID), "get warehouse stock for update")
}

// Create inserta la fila pivote; carreras contra la PK compuesta -> domain.ErrDuplicate.
func (r *WarehouseStockRepo) Create(stock *entity.WarehouseStock) error {
	query := `
		INSERT INTO warehouse_products (warehouse_id, product_id, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		stock.WarehouseID, stock.ProductID, stock.Stock, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert warehouse stock: %w", err)
	}
	return nil
}

// UpdateStock sobreescribe el stock (reemplazo total, no delta).
func (r *WarehouseStockRepo) UpdateStock(warehouseID, productID string, stock int) error {
	query := `
		UPDATE warehouse_products SET stock = $3, updated_at = now()
		WHERE warehouse_id = $1 AND product_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, warehouseID, productID, stock)
	if err != nil {
		return fmt.Errorf("update warehouse stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la fila pivote. Idempotente: 0 filas afectadas no es error.
func (r *WarehouseStockRepo) Delete(warehouseID, productID string) error {
	query := `DELETE FROM warehouse_products WHERE warehouse_id = $1 AND product_id = $2`
	if _, err := r.q.Exec(context.Background(), query, warehouseID, productID); err != nil {
		return fmt.Errorf("delete warehouse stock: %w", err)
	}
	return nil
}

// ListByWarehouse lista el stock de una bodega con paginación.
func (r *WarehouseStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.WarehouseStock, error) {
	query := `
		SELECT warehouse_id, product_id, stock, created_at, updated_at
		FROM warehouse_products WHERE warehouse_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouse stock: %w", err)
	}
	return r.scanAll(rows)
}

// ListByProduct lista las bodegas que almacenan el producto.
func (r *WarehouseStockRepo) ListByProduct(productID string) ([]*entity.WarehouseStock, error) {
	query := `
		SELECT warehouse_id, product_id, stock, created_at, updated_at
		FROM warehouse_products WHERE product_id = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list warehouse stock by product: %w", err)
	}
	return r.scanAll(rows)
}

// TotalByProduct suma el stock del producto en todas las bodegas en una sola consulta.
func (r *WarehouseStockRepo) TotalByProduct(productID string) (int64, error) {
	query := `SELECT COALESCE(SUM(stock), 0) FROM warehouse_products WHERE product_id = $1`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, productID).Scan(&total); err != nil {
		return 0, fmt.Errorf("total warehouse stock: %w", err)
	}
	return total, nil
}

func (r *WarehouseStockRepo) scanOne(row pgx.Row, op string) (*entity.WarehouseStock, error) {
	var s entity.WarehouseStock
	err := row.Scan(&s.WarehouseID, &s.ProductID, &s.Stock, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func (r *WarehouseStockRepo) scanAll(rows pgx.Rows) ([]*entity.WarehouseStock, error) {
	defer rows.Close()
	var list []*entity.WarehouseStock
	for rows.Next() {
		var s entity.WarehouseStock
		if err := rows.Scan(&s.WarehouseID, &s.ProductID, &s.Stock, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
