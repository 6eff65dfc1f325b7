package solicitudes

import (
	"context"

	"github.com/acampos/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con el repositorio
// de solicitudes, para que la cabecera y sus líneas se inserten juntas.
type TxRunner interface {
	RunSolicitud(ctx context.Context, fn func(
		solicitudRepo repository.SolicitudRepository,
	) error) error
}
