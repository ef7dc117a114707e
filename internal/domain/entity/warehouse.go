package entity

import "time"

// Warehouse representa una bodega desde la que se surte stock a las tiendas.
type Warehouse struct {
	ID        string
	Name      string
	Slug      string
	Address   string
	Photo     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
