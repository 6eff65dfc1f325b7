package entity

import "time"

// Estados de una orden de compra. "recibida" y "cancelada" son terminales:
// una vez alcanzados no se admite ninguna otra transición.
const (
	CompraPendiente = "pendiente"
	CompraRecibida  = "recibida"
	CompraCancelada = "cancelada"
)

// Compra representa una orden de compra a un proveedor.
// FechaRecepcion solo se asigna en la transición a "recibida".
type Compra struct {
	ID             string
	ProveedorID    string
	UsuarioID      string
	NumeroOrden    string // único global
	Estado         string
	Observaciones  string
	FechaOrden     time.Time
	FechaRecepcion *time.Time
}

// CompraDetalle es una línea de la orden; inmutable una vez creada la orden.
type CompraDetalle struct {
	ID         string
	CompraID   string
	ArticuloID string
	Cantidad   int
}

// CompraResumen es la fila de listado con datos del proveedor y agregados
// de sus líneas.
type CompraResumen struct {
	Compra
	ProveedorNombre string
	ProveedorCodigo string
	RegistradoPor   string
	TotalItems      int
	TotalUnidades   int
}
