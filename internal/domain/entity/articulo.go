package entity

import "time"

// Articulo representa un artículo del inventario. Se elimina con soft delete
// (Activo = false) porque los movimientos históricos lo referencian.
type Articulo struct {
	ID             string
	Codigo         string // único global
	Nombre         string
	Descripcion    string
	Categoria      string
	ProveedorID    *string
	FechaCaducidad *time.Time
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
