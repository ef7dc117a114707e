package entity

import "time"

// Merchant representa una tienda/punto de venta. KeeperID es el usuario responsable.
type Merchant struct {
	ID        string
	Name      string
	Slug      string
	Address   string
	Photo     string
	Phone     string
	KeeperID  string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
