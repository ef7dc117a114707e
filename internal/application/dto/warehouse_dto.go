package dto

import "time"

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Photo   string `json:"photo,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// UpdateWarehouseRequest body para PUT /api/warehouses/:id (campos opcionales).
type UpdateWarehouseRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Photo   *string `json:"photo,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// WarehouseResponse representación de una bodega en respuestas.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Address   string    `json:"address,omitempty"`
	Photo     string    `json:"photo,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WarehouseListResponse listado paginado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
