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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Slug duplicado -> domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, slug, thumbnail, about, price, is_popular, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Slug, product.Thumbnail,
		product.About, product.Price, product.IsPopular, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // category_id inexistente
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto activo por ID; nil, nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := selectProduct + ` WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetBySlug obtiene un producto activo por slug; nil, nil si no existe.
func (r *ProductRepo) GetBySlug(slug string) (*entity.Product, error) {
	query := selectProduct + ` WHERE slug = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, slug), "get product by slug")
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET category_id = $2, name = $3, slug = $4, thumbnail = $5, about = $6,
		    price = $7, is_popular = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, product.Slug, product.Thumbnail,
		product.About, product.Price, product.IsPopular, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos activos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := selectProduct + `
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.scanAll(rows)
}

// ListByCategory lista productos activos de una categoría con paginación.
func (r *ProductRepo) ListByCategory(categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := selectProduct + `
		WHERE category_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return r.scanAll(rows)
}

// Delete marca el producto como eliminado (soft delete).
// Las filas pivote de stock NO se tocan (decisión de política; ver DESIGN.md).
func (r *ProductRepo) Delete(id string) error {
	query := `UPDATE products SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

const selectProduct = `
	SELECT id, category_id, name, slug, thumbnail, about, price, is_popular, created_at, updated_at, deleted_at
	FROM products`

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Thumbnail, &p.About,
		&p.Price, &p.IsPopular, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) scanAll(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Thumbnail, &p.About,
			&p.Price, &p.IsPopular, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
