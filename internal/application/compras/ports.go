package compras

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los
// repositorios que necesita la recepción de una orden: movimientos, stock y
// la propia orden. La transición de estado y los movimientos de todas las
// líneas comparten la misma unidad atómica.
type TxRunner interface {
	RunCompra(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		stockRepo repository.StockRepository,
		compraRepo repository.CompraRepository,
	) error) error
}
