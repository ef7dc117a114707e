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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. Slug duplicado -> domain.ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, photo, tagline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Slug, category.Photo, category.Tagline,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría activa por ID; nil, nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, name, slug, photo, tagline, created_at, updated_at, deleted_at
		FROM categories WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get category")
}

// GetBySlug obtiene una categoría activa por slug; nil, nil si no existe.
func (r *CategoryRepo) GetBySlug(slug string) (*entity.Category, error) {
	query := `
		SELECT id, name, slug, photo, tagline, created_at, updated_at, deleted_at
		FROM categories WHERE slug = $1 AND deleted_at IS NULL`
	return r.scanOne(r.q.QueryRow(context.Background(), query, slug), "get category by slug")
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, slug = $3, photo = $4, tagline = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Slug, category.Photo, category.Tagline, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías activas con paginación.
func (r *CategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	query := `
		SELECT id, name, slug, photo, tagline, created_at, updated_at, deleted_at
		FROM categories WHERE deleted_at IS NULL
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Photo, &c.Tagline, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete marca la categoría como eliminada (soft delete). No cascada sobre productos.
func (r *CategoryRepo) Delete(id string) error {
	query := `UPDATE categories SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.q.Exec(context.Background(), query, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (r *CategoryRepo) scanOne(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Photo, &c.Tagline, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}
