package dto

import "time"

// CreateMerchantRequest body para POST /api/merchants.
type CreateMerchantRequest struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	Photo    string `json:"photo,omitempty"`
	Phone    string `json:"phone,omitempty"`
	KeeperID string `json:"keeper_id"`
}

// UpdateMerchantRequest body para PUT /api/merchants/:id (campos opcionales).
type UpdateMerchantRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Photo    *string `json:"photo,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	KeeperID *string `json:"keeper_id,omitempty"`
}

// MerchantResponse representación de una tienda en respuestas.
type MerchantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Address   string    `json:"address,omitempty"`
	Photo     string    `json:"photo,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	KeeperID  string    `json:"keeper_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MerchantListResponse listado paginado de tiendas.
type MerchantListResponse struct {
	Items []MerchantResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
