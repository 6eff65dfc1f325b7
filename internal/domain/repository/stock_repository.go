package repository

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// StockNiveles es el conjunto explícito de campos actualizables de un
// registro de stock. Cada campo es independiente: nil significa "no tocar".
// El adaptador compila solo los campos presentes en un UPDATE parametrizado.
type StockNiveles struct {
	StockMinimo *int
	StockMaximo *int
	Ubicacion   *string
}

// Vacio reporta si no hay ningún campo que actualizar.
func (n StockNiveles) Vacio() bool {
	return n.StockMinimo == nil && n.StockMaximo == nil && n.Ubicacion == nil
}

// StockRepository define el puerto para leer y actualizar stock por artículo.
// Las mutaciones de Cantidad ocurren solo dentro de transacciones del motor
// de movimientos.
type StockRepository interface {
	// Get devuelve el stock del artículo; si no existe fila devuelve un
	// registro en cero (el stock se crea con el primer movimiento).
	Get(ctx context.Context, articuloID string) (*entity.Stock, error)
	// GetForUpdate es Get con bloqueo de fila (SELECT ... FOR UPDATE) para
	// proteger el read-modify-write de Cantidad frente a escritores
	// concurrentes.
	GetForUpdate(ctx context.Context, articuloID string) (*entity.Stock, error)
	Upsert(ctx context.Context, s *entity.Stock) error
	// UpdateNiveles aplica únicamente los campos presentes del field set.
	UpdateNiveles(ctx context.Context, articuloID string, niveles StockNiveles) error
	// Listado devuelve artículos activos con su stock y proveedor, ordenados
	// por nombre. categoria vacía = sin filtro.
	Listado(ctx context.Context, categoria string) ([]*entity.ArticuloStock, error)
}
