package entity

import "time"

// Client representa un contacto facturable que pertenece a exactamente un User.
// UserID es inmutable después de la creación: toda lectura/escritura debe
// validarse contra el usuario autenticado.
type Client struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Company   string // opcional
	CreatedAt time.Time
	UpdatedAt time.Time
}
