package entity

import "time"

// Stock representa la existencia actual de un artículo (1:1 con Articulo).
// Se crea de forma perezosa con el primer movimiento del artículo.
// StockMinimo/StockMaximo en 0 significan "sin configurar"; la clasificación
// de estado distingue ese caso de un umbral real en cero.
type Stock struct {
	ArticuloID  string
	Cantidad    int
	StockMinimo int
	StockMaximo int
	Ubicacion   string
	UpdatedAt   time.Time
}

// ArticuloStock es la fila artículo+stock+proveedor usada por los listados.
type ArticuloStock struct {
	ArticuloID      string
	Codigo          string
	Nombre          string
	Categoria       string
	ProveedorNombre string
	FechaCaducidad  *time.Time
	Cantidad        int
	StockMinimo     int
	StockMaximo     int
	Ubicacion       string
	UpdatedAt       time.Time
}
