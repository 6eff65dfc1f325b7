package repository

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/entity"
)

// MovimientoFiltro filtra el listado de movimientos. Campos vacíos no filtran.
type MovimientoFiltro struct {
	Tipo       string
	ArticuloID string
	Limit      int
}

// MovimientoRepository define el puerto de persistencia para movimientos.
// Los movimientos son inmutables: solo Create y lecturas.
type MovimientoRepository interface {
	Create(ctx context.Context, m *entity.Movimiento) error
	GetByID(ctx context.Context, id string) (*entity.MovimientoDetalle, error)
	List(ctx context.Context, f MovimientoFiltro) ([]*entity.MovimientoDetalle, error)
	Estadisticas(ctx context.Context) (*entity.MovimientoEstadisticas, error)
}
