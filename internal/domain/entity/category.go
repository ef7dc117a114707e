package entity

import "time"

// Category representa una categoría del catálogo de productos.
type Category struct {
	ID        string
	Name      string
	Slug      string // derivado del nombre, único
	Photo     string // ruta/URL de la imagen (el rewriting de URLs es responsabilidad externa)
	Tagline   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // nil = activa (soft delete)
}
