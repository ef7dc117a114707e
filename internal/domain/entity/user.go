package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleKeeper  = "keeper"  // encargado de tienda (merchant)
	RoleCashier = "cashier" // cajero, solo registra ventas
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, keeper, cashier
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
