package inventario

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se persiste el par movimiento+stock completo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		articuloRepo repository.ArticuloRepository,
	) error) error
}
