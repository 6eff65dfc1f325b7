package entity

import "time"

// Proveedor representa un proveedor de artículos. Soft delete vía Activo.
type Proveedor struct {
	ID        string
	Codigo    string // único global
	Nombre    string
	Contacto  string
	Telefono  string
	Email     string
	Direccion string
	Ciudad    string
	Pais      string
	Notas     string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
