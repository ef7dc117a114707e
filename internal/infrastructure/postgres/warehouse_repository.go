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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, slug, address, photo, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Slug, warehouse.Address,
		warehouse.Photo, warehouse.Phone, warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega activa por ID; nil, nil si no existe.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, slug, address, photo, phone, created_at, updated_at, deleted_at
		FROM warehouses WHERE id = $1 AND deleted_at IS NULL`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.Slug, &w.Address, &w.Photo, &w.Phone,
		&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, slug = $3, address = $4, photo = $5, phone = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name, warehouse.Slug, warehouse.Address,
		warehouse.Photo, warehouse.Phone, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// List lista bodegas activas con paginación.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := `
		SELECT id, name, slug, address, photo, phone, created_at, updated_at, deleted_at
		FROM warehouses WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Slug, &w.Address, &w.Photo, &w.Phone,
			&w.CreatedAt, &w.UpdatedAt, &w.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete marca la bodega como eliminada (soft delete). Sus filas de stock NO se tocan.
func (r *WarehouseRepo) Delete(id string) error {
	query := `UPDATE warehouses SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
