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

var _ repository.MerchantRepository = (*MerchantRepo)(nil)

// MerchantRepo implementación del puerto MerchantRepository sobre PostgreSQL.
type MerchantRepo struct {
	q Querier
}

// NewMerchantRepository construye el adaptador de persistencia para tiendas.
func NewMerchantRepository(q Querier) *MerchantRepo {
	return &MerchantRepo{q: q}
}

// Create persiste una nueva tienda. KeeperID inexistente -> domain.ErrNotFound.
func (r *MerchantRepo) Create(merchant *entity.Merchant) error {
	query := `
		INSERT INTO merchants (id, name, slug, address, photo, phone, keeper_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		merchant.ID, merchant.Name, merchant.Slug, merchant.Address, merchant.Photo,
		merchant.Phone, merchant.KeeperID, merchant.CreatedAt, merchant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda activa por ID; nil, nil si no existe.
func (r *MerchantRepo) GetByID(id string) (*entity.Merchant, error) {
	query := `
		SELECT id, name, slug, address, photo, phone, keeper_id, created_at, updated_at, deleted_at
		FROM merchants WHERE id = $1 AND deleted_at IS NULL`
	var m entity.Merchant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Slug, &m.Address, &m.Photo, &m.Phone, &m.KeeperID,
		&m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant: %w", err)
	}
	return &m, nil
}

// Update actualiza una tienda existente.
func (r *MerchantRepo) Update(merchant *entity.Merchant) error {
	query := `
		UPDATE merchants
		SET name = $2, slug = $3, address = $4, photo = $5, phone = $6, keeper_id = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		merchant.ID, merchant.Name, merchant.Slug, merchant.Address, merchant.Photo,
		merchant.Phone, merchant.KeeperID, merchant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update merchant: %w", err)
	}
	return nil
}

// List lista tiendas activas con paginación.
func (r *MerchantRepo) List(limit, offset int) ([]*entity.Merchant, error) {
	query := `
		SELECT id, name, slug, address, photo, phone, keeper_id, created_at, updated_at, deleted_at
		FROM merchants WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Merchant
	for rows.Next() {
		var m entity.Merchant
		if err := rows.Scan(&m.ID, &m.Name, &m.Slug, &m.Address, &m.Photo, &m.Phone,
			&m.KeeperID, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete marca la tienda como eliminada (soft delete). Sus filas de stock NO se tocan.
func (r *MerchantRepo) Delete(id string) error {
	query := `UPDATE merchants SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete merchant: %w", err)
	}
	return nil
}
