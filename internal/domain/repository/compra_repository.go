package repository

import (
	"context"
	"time"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// CompraFiltro filtra el listado de órdenes. Campos vacíos no filtran.
type CompraFiltro struct {
	Estado      string
	ProveedorID string
	Limit       int
}

// CompraRepository define el puerto de persistencia para órdenes de compra.
type CompraRepository interface {
	// CreateConDetalles inserta la orden y sus líneas; devuelve
	// domain.ErrDuplicate si el número de orden ya existe.
	CreateConDetalles(ctx context.Context, c *entity.Compra, detalles []*entity.CompraDetalle) error
	GetByID(ctx context.Context, id string) (*entity.Compra, error)
	// GetForUpdate bloquea la fila de la orden durante la transición de
	// estado para impedir una doble recepción concurrente.
	GetForUpdate(ctx context.Context, id string) (*entity.Compra, error)
	GetDetalles(ctx context.Context, compraID string) ([]*entity.CompraDetalle, error)
	UpdateEstado(ctx context.Context, id, estado string, fechaRecepcion *time.Time) error
	List(ctx context.Context, f CompraFiltro) ([]*entity.CompraResumen, error)
}
