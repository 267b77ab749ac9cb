package entity

import "time"

// User representa un usuario del sistema (freelancer dueño de sus clientes y facturas).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string // opcional; si va vacío se usa el email al registrar
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
